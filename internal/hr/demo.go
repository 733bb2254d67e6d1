package hr

import "time"

// DemoEmployees is the dataset a fresh in-memory deployment is seeded with.
func DemoEmployees() []Employee {
	return []Employee{
		{
			ID:            1,
			Name:          "Alice Smith",
			Position:      "Software Engineer",
			Department:    "Technology",
			LeaveBalances: DefaultBalances(),
		},
		{
			ID:         2,
			Name:       "Bob Johnson",
			Position:   "HR Manager",
			Department: "Human Resources",
			LeaveBalances: Balances{
				Vacation: Balance{Allocated: 20, Used: 5},
				Sick:     Balance{Allocated: 10, Used: 1},
				Personal: Balance{Allocated: DefaultPersonalAllocation},
			},
		},
	}
}

func DemoLeaveRequests() []LeaveRequest {
	return []LeaveRequest{
		{
			ID:         1,
			Reference:  "7f9c21de-6f4b-4a53-9d8e-3d2f9b6f0c11",
			EmployeeID: 2,
			Type:       LeaveTypeVacation,
			StartDate:  NewDate(2025, time.October, 20),
			EndDate:    NewDate(2025, time.October, 22),
			Reason:     "Family vacation.",
			Status:     LeaveStatusApproved,
		},
	}
}
