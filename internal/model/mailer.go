package model

import "context"

// Mailer delivers codes to users.
type Mailer interface {
	SendCode(ctx context.Context, to, purpose, code string) error
}
