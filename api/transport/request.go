package transport

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ProjectPage struct {
	Projects   interface{} `json:"projects"`
	Pagination Pagination  `json:"pagination"`
}

type BlogPage struct {
	Blogs      interface{} `json:"blogs"`
	Pagination Pagination  `json:"pagination"`
}
