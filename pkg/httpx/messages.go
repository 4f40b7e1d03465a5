package httpx

const (
	noUserOnRequest = "no-user-on-request"
	accessDenied    = "access-denied"
)
