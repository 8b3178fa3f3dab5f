package middlewares

import (
	"advice-service/internal/pkg/exceptions"
	"advice-service/internal/pkg/utils"
	"fmt"
	"net/http"
)

// RequireCollegeStudent gates endpoints reserved for mentor-side accounts,
// such as publishing weekly availability. Must run after Authentication.
func (m *Middlewares) RequireCollegeStudent(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := SessionFromContext(r.Context())
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if !session.IsCollegeStudent() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotCollegeStudent(fmt.Errorf("role %s cannot publish availability", session.Role)))
			return
		}

		next.ServeHTTP(w, r)
	})
}
