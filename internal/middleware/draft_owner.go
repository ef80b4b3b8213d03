package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	DraftKeyHeader  = "X-Draft-Key"
	DraftCookieName = "wizard.draft"
	draftOwnerLocal = "draft_owner"
	maxDraftKeyLen  = 128
)

// DraftOwner resolves which saved draft a request works against: the
// X-Draft-Key header first, then the wizard.draft cookie. Signed cookie values
// ("s:id.sig") contribute only the id part.
func DraftOwner() fiber.Handler {
	return func(c *fiber.Ctx) error {
		owner := strings.TrimSpace(c.Get(DraftKeyHeader))
		if owner == "" {
			owner = c.Cookies(DraftCookieName)
			if strings.HasPrefix(owner, "s:") {
				owner = strings.SplitN(owner[2:], ".", 2)[0]
			}
		}
		if len(owner) > maxDraftKeyLen {
			owner = owner[:maxDraftKeyLen]
		}
		c.Locals(draftOwnerLocal, owner)
		return c.Next()
	}
}

// GetDraftOwner returns the owner key from context ("" means the default draft).
func GetDraftOwner(c *fiber.Ctx) string {
	if owner, ok := c.Locals(draftOwnerLocal).(string); ok {
		return owner
	}
	return ""
}
