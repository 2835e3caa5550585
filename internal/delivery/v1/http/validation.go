package http

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/DRSN-tech/storefront-backend/internal/domain"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
)

var (
	emailRe   = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	pincodeRe = regexp.MustCompile(`^\d{6}$`)
)

const phoneDigits = 10

// validateCustomer проверяет данные покупателя до вызова оформления заказа.
// Все поля обязательны; пробелы по краям отбрасываются.
func validateCustomer(dto *CustomerDTO) (domain.Customer, error) {
	if dto == nil {
		return domain.Customer{}, e.Wrap("customer", e.ErrMissingFields)
	}

	c := domain.Customer{
		FullName: strings.TrimSpace(dto.FullName),
		Email:    strings.TrimSpace(dto.Email),
		Phone:    strings.TrimSpace(dto.Phone),
		Address:  strings.TrimSpace(dto.Address),
		City:     strings.TrimSpace(dto.City),
		State:    strings.TrimSpace(dto.State),
		Pincode:  strings.TrimSpace(dto.Pincode),
	}

	var missing []string
	for _, f := range []struct {
		name  string
		value string
	}{
		{"full_name", c.FullName},
		{"email", c.Email},
		{"phone", c.Phone},
		{"address", c.Address},
		{"city", c.City},
		{"state", c.State},
		{"pincode", c.Pincode},
	} {
		if f.value == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return domain.Customer{}, e.Wrap(strings.Join(missing, ", "), e.ErrMissingFields)
	}

	if !emailRe.MatchString(c.Email) {
		return domain.Customer{}, e.Wrap(c.Email, e.ErrInvalidEmail)
	}

	if n := countDigits(c.Phone); n != phoneDigits {
		return domain.Customer{}, e.Wrap(fmt.Sprintf("%d digits", n), e.ErrInvalidPhone)
	}

	if !pincodeRe.MatchString(c.Pincode) {
		return domain.Customer{}, e.Wrap(c.Pincode, e.ErrInvalidPincode)
	}

	return c, nil
}

func countDigits(s string) int {
	n := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			n++
		}
	}
	return n
}
