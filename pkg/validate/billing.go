package validate

const (
	BillingPrepaid  = "prepaid"
	BillingPostpaid = "postpaid"
)

// IsBillingType reports whether s is one of the two supported billing types.
func IsBillingType(s string) bool {
	return s == BillingPrepaid || s == BillingPostpaid
}
