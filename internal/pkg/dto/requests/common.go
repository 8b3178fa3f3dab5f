package requests

type QueryParams struct {
	Search   string
	Page     int
	PageSize int
}
