package log

const (
	KeyAppName       = "app"
	KeyTag           = "tag"
	KeyProcess       = "process"
	KeyConfig        = "config"
	KeyRequestID     = "requestId"
	KeyRequestBody   = "requestBody"
	KeyRequestHeader = "requestHeader"
	KeyRequestHost   = "host"
	KeyRequestIp     = "requesterIP"
	KeyRequestMethod = "requestMethod"
	KeyRequestURI    = "requestURI"
	KeyRequestURL    = "requestURL"

	KeyCustomerID   = "customerId"
	KeyCustomer     = "customer"
	KeyProductID    = "productId"
	KeyProduct      = "product"
	KeyProducts     = "products"
	KeyFilters      = "filters"
	KeyCart         = "cart"
	KeyCount        = "count"
	KeyRowsAffected = "rowsAffected"
	KeyDbURL        = "dbUrl"
)
