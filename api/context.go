package api

import "context"

type keyType string

const adminEmailKey keyType = "adminEmail"

// ctxWithAdminEmail records which admin the session token belongs to.
func ctxWithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}

// ctxAdminEmail retrieves the admin email, or "" outside the admin subtree.
func ctxAdminEmail(ctx context.Context) string {
	if email, ok := ctx.Value(adminEmailKey).(string); ok {
		return email
	}
	return ""
}
