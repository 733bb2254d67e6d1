package hr

type Employee struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	Position   string `json:"position"`
	Department string `json:"department"`

	LeaveBalances Balances `json:"leave_balances"`
}

// Balance tracks one leave type for one employee. The remaining amount is
// derived and intentionally not serialized.
type Balance struct {
	Allocated int `json:"allocated"`
	Used      int `json:"used"`
}

func (b Balance) Remaining() int {
	return b.Allocated - b.Used
}

type Balances struct {
	Vacation Balance `json:"vacation"`
	Sick     Balance `json:"sick"`
	Personal Balance `json:"personal"`
}

const (
	DefaultVacationAllocation = 15
	DefaultSickAllocation     = 10
	DefaultPersonalAllocation = 5
)

// DefaultBalances returns the allocation every new employee starts with.
func DefaultBalances() Balances {
	return Balances{
		Vacation: Balance{Allocated: DefaultVacationAllocation},
		Sick:     Balance{Allocated: DefaultSickAllocation},
		Personal: Balance{Allocated: DefaultPersonalAllocation},
	}
}

// ByType returns a pointer into b for the given leave type so callers can
// mutate the balance in place. Unknown types yield nil.
func (b *Balances) ByType(t LeaveType) *Balance {
	switch t {
	case LeaveTypeVacation:
		return &b.Vacation
	case LeaveTypeSick:
		return &b.Sick
	case LeaveTypePersonal:
		return &b.Personal
	default:
		return nil
	}
}
