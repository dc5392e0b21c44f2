package repository

// ListOptions holds the paging parameters for listing items.
// Zero values are not sent, leaving the server defaults in place.
type ListOptions struct {
	Skip  int
	Limit int
}
