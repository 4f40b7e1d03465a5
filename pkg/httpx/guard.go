package httpx

import (
	"errors"
	"net/http"

	"github.com/Nynra/pyserver-tools/pkg/authz"
	"github.com/Nynra/pyserver-tools/pkg/groupauth"
	"github.com/Nynra/pyserver-tools/pkg/logx"
)

// ErrNoUser is returned by a UserExtractor when the request carries no
// resolvable identity.
var ErrNoUser = errors.New("no user on request")

// UserExtractor resolves the acting user from a request. It abstracts the
// host's session or token layer; this package never inspects credentials
// itself.
type UserExtractor interface {
	UserFromRequest(r *http.Request) (groupauth.User, error)
}

// Guard wires the action checker into plain http.Handler chains. It does no
// routing; any router that speaks http.Handler composes with it.
type Guard struct {
	logger  logx.Logger
	checker authz.ActionChecker
	users   UserExtractor
}

func NewGuard(logger logx.Logger, checker authz.ActionChecker, users UserExtractor) *Guard {
	return &Guard{
		logger:  logger.WithName("guard"),
		checker: checker,
		users:   users,
	}
}

// Protect runs the action check before the wrapped handler. Requests with
// no resolvable user get 401 unless the action is public; denied requests
// get 403.
func (g *Guard) Protect(action string, groups groupauth.ActionGroups, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := g.logger.WithData(logx.Data{
			Key:   "action",
			Value: action,
		}, logx.Data{
			Key:   "path",
			Value: r.URL.Path,
		})

		user, err := g.users.UserFromRequest(r)
		if err != nil {
			// A public action needs no identity at all
			if g.checker.HasActionPermission(r.Context(), logger, groupauth.User{}, action, groups) {
				next.ServeHTTP(w, r)
				return
			}

			logger.Debug(noUserOnRequest)
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		if !g.checker.HasActionPermission(r.Context(), logger, user, action, groups) {
			logger.Debug(accessDenied, logx.Data{
				Key:   "user.id",
				Value: user.ID,
			})
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
