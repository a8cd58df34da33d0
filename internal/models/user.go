package models

import "time"

type UserRole string

const (
	RoleAdmin   UserRole = "admin"   // katalog yönetimi dahil her şey
	RoleCashier UserRole = "cashier" // POS, restock ve geçmiş
)

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}
