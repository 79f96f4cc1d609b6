// Package sympla implements the paginated Sympla API client.
//
// The client requests published events page by page with a fixed page size,
// normalizes each page's records through the event package and deduplicates
// the accumulated result. Authentication failures abort the run; any other
// page failure ends pagination while keeping the events already fetched.
package sympla
