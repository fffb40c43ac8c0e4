package models

// Response is the uniform JSON envelope of every endpoint: successful calls
// carry {"success": true, "data": ...}, failures carry {"success": false,
// "message": ...}, and validation failures additionally itemize the field
// violations under "errors".
type Response struct {
	Success bool     `json:"success"`
	Data    any      `json:"data,omitempty"`
	Message string   `json:"message,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

// OK wraps data in a success envelope.
func OK(data any) Response {
	return Response{Success: true, Data: data}
}

// Fail wraps an error message in a failure envelope.
func Fail(message string) Response {
	return Response{Success: false, Message: message}
}

// Invalid wraps an itemized list of validation violations in a failure
// envelope.
func Invalid(message string, errors []string) Response {
	return Response{Success: false, Message: message, Errors: errors}
}

// Pagination describes one page of a list result.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NodeList is the payload of the node list endpoint.
type NodeList struct {
	Nodes      []Node     `json:"nodes"`
	Pagination Pagination `json:"pagination"`
}

// ResolvedNode is the payload of the public path-resolution endpoint.
type ResolvedNode struct {
	Node     Node   `json:"node"`
	NodeType string `json:"nodeType"`
}
