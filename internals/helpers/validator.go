package helper

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidatorMessages mengubah error validator.v10 menjadi map field → pesan,
// siap dikirim lewat JsonValidationError (422).
func ValidatorMessages(err error) map[string][]string {
	out := map[string][]string{}
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		out["_"] = []string{err.Error()}
		return out
	}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())
		msg := fe.Tag()
		if fe.Param() != "" {
			msg += "=" + fe.Param()
		}
		out[field] = append(out[field], msg)
	}
	return out
}
