package api

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler     projectHandler
	skillHandler       skillHandler
	certificateHandler certificateHandler
	contactHandler     contactHandler
	adminHandler       adminHandler
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message,omitempty"`
	Data       any         `json:"data,omitempty"`
	Error      string      `json:"error,omitempty"`
	Details    any         `json:"details,omitempty"`
	Count      *int        `json:"count,omitempty"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// Pagination describes one page of a larger result set.
type Pagination struct {
	Current int   `json:"current"`
	Pages   int   `json:"pages"`
	Total   int64 `json:"total"`
	HasNext bool  `json:"hasNext"`
	HasPrev bool  `json:"hasPrev"`
}

func newPagination(page, limit int, total int64) *Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Pagination{
		Current: page,
		Pages:   pages,
		Total:   total,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

type adminInfo struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// loginResponse is the only envelope carrying a token.
type loginResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Token   string    `json:"token"`
	Admin   adminInfo `json:"admin"`
}

type verifyResponse struct {
	Success bool      `json:"success"`
	Message string    `json:"message"`
	Admin   adminInfo `json:"admin"`
}

func intPtr(n int) *int {
	return &n
}
