package models

type User struct {
	tableName struct{} `pg:"users"`

	Id       string `pg:"id,pk"`
	Email    string `pg:"email"`
	Password string `pg:"password"`
}

type UserDto struct {
	Email string `json:"email"`
	Pass  string `json:"pass"`
}
