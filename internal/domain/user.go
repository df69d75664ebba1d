package domain

type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"-"`
}

// InsertUser contém os campos aceitos na criação de um usuário
type InsertUser struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
