package rest

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// usersPage — окно выборки GET /users: новые пользователи первыми.
type usersPage struct {
	Limit  int
	Offset int
}

// parseUsersPage — limit приводится к [1..maxListLimit], нечисловой limit даёт значение по умолчанию;
// отрицательный или нечисловой offset игнорируется.
func parseUsersPage(c *gin.Context) usersPage {
	p := usersPage{Limit: defaultListLimit}
	if raw, ok := c.GetQuery("limit"); ok {
		if v, err := strconv.Atoi(raw); err == nil {
			p.Limit = min(max(v, 1), maxListLimit)
		}
	}
	if raw, ok := c.GetQuery("offset"); ok {
		if v, err := strconv.Atoi(raw); err == nil && v >= 0 {
			p.Offset = v
		}
	}
	return p
}
