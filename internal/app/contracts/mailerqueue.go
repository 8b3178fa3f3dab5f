package contracts

import "context"

type MailerQueueService interface {
	SendResetPasswordEmail(ctx context.Context, recipient, resetUrl string) error
}
