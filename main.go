package main

import "github.com/evlasov/eshop/cmd"

func main() {
	cmd.Start()
}
