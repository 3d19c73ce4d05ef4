package constant

const (
	OtelServiceScopeName    = "service"
	OtelRepositoryScopeName = "repository"
	OtelHandlerScopeName    = "handler"
	OtelS3ScopeName         = "s3"

	OtelQueryAttributeKey = "query"
	OtelPathAttributeKey  = "path"
	OtelRowsAttributeKey  = "rows"
)

const (
	ContentTypeCSV = "text/csv"
)

const (
	CSVExtension   = ".csv"
	DatePathLayout = "2006/01/02"
)

const (
	Empty = ""
)
