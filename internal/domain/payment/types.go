package payment

type Status string

const (
	StatusPending Status = "pending"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed:
		return true
	default:
		return false
	}
}

// AmountTolerance is the maximum difference between a settlement amount
// and the booking's recorded total that still counts as equal.
const AmountTolerance = 0.01
