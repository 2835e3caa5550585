package domain

// Customer — контактные данные и адрес доставки покупателя.
type Customer struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	City     string
	State    string
	Pincode  string
}
