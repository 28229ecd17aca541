package constants

const (
	AppEshop = "eshop"

	LogFile = "/var/log/eshop.log"
)
