package request

type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=8"`
	Semester   int    `json:"semester" binding:"required,min=1,max=8"`
	Department string `json:"department" binding:"required"`
	Hostel     string `json:"hostel" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}
