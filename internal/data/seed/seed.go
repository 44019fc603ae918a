// Package seed provides the fixed startup collections. In a production
// deployment this data provider would be replaced by a real case-intake
// service; swapping it out is deliberately out of scope here.
package seed

import (
	"github.com/careops/dispatch/internal/core/casefile"
	"github.com/careops/dispatch/internal/core/todo"
)

// Cases returns the seeded case collection, newest case number first.
func Cases() []casefile.Case {
	return []casefile.Case{
		{ID: "1150122-08", PatientName: "Lin W.", Hospital: "Shin Kong Hospital, Taipei", Status: casefile.StatusPendingIntake, Time: "1970-01-01 08:00", CareType: "full day"},
		{ID: "1150122-07", PatientName: "Chen M.", Hospital: "Taichung | Beitun home care", Status: casefile.StatusUnassigned, Time: "1970-01-01 08:00", CareType: "one day"},
		{ID: "1150122-06", PatientName: "Chang M.", Hospital: "Yangmei District, Taoyuan", Status: casefile.StatusPendingIntake, Time: "1970-01-01 09:00", CareType: "home care"},
		{ID: "1150122-05", PatientName: "Lee H.", Hospital: "NTU Cancer Center", Status: casefile.StatusNoShow, Time: "1970-01-01 08:00", CareType: "full day"},
		{ID: "1150122-03", PatientName: "Wang M.", Hospital: "Taipei Veterans General", Status: casefile.StatusAssigned, Time: "1970-01-01 12:00", CareType: "half day"},
	}
}

// Todos returns the seeded to-do collection.
func Todos() []todo.Item {
	return []todo.Item{
		{
			ID:          "t1",
			CaseID:      "1150122-07",
			Content:     "Family asked about switching to half-day care, reply pending",
			Category:    todo.CategoryContact,
			Status:      todo.StatusPending,
			CreatedAt:   "2024-01-22 09:30",
			CreatorName: "support desk",
		},
		{
			ID:          "t2",
			CaseID:      "1150122-07",
			Content:     "Confirm the patient has a PCR certificate on file",
			Category:    todo.CategoryRecord,
			Status:      todo.StatusCompleted,
			CreatedAt:   "2024-01-21 14:00",
			CreatorName: "dispatcher",
		},
		{
			ID:          "t3",
			CaseID:      "1150122-08",
			Content:     "Issue triplicate invoice to the client company before month end",
			Category:    todo.CategoryInvoice,
			Status:      todo.StatusPending,
			CreatedAt:   "2024-01-22 10:15",
			CreatorName: "accounting",
			DueDate:     "2024-01-31",
		},
		{
			ID:          "t4",
			CaseID:      "1150122-05",
			Content:     "Caregiver reports a large pet at the home, confirm safety",
			Category:    todo.CategoryRecord,
			Status:      todo.StatusPending,
			CreatedAt:   "2024-01-22 11:00",
			CreatorName: "support desk",
		},
		{
			ID:          "t5",
			CaseID:      "1150122-03",
			Content:     "Deposit of 3000 received",
			Category:    todo.CategoryBilling,
			Status:      todo.StatusCompleted,
			CreatedAt:   "2024-01-20 16:20",
			CreatorName: "accounting",
		},
		{
			ID:          "t6",
			CaseID:      "1150122-07",
			Content:     "Family called to cancel tomorrow morning's shift",
			Category:    todo.CategoryCancel,
			Status:      todo.StatusPending,
			CreatedAt:   "2024-01-22 13:45",
			CreatorName: "night desk",
		},
	}
}
