package repository

import "doccatalog/internal/model"

// SeedDocuments returns the fixture records inserted into an empty store,
// three per category. IDs and upload dates are left to the store.
func SeedDocuments() []model.Document {
	return []model.Document{
		{Title: "Engineering Standards", Category: model.CategoryEngineer, Description: "Technical standards for engineering projects", FileName: "eng_standards.pdf"},
		{Title: "CAD Guidelines", Category: model.CategoryEngineer, Description: "Computer-aided design specifications", FileName: "cad_guidelines.pdf"},
		{Title: "Safety Protocols", Category: model.CategoryEngineer, Description: "Engineering safety procedures", FileName: "eng_safety.pdf"},

		{Title: "Employee Handbook", Category: model.CategoryHR, Description: "Company policies and procedures", FileName: "hr_handbook.pdf"},
		{Title: "Benefits Guide", Category: model.CategoryHR, Description: "Employee benefits information", FileName: "benefits_guide.pdf"},
		{Title: "Onboarding Checklist", Category: model.CategoryHR, Description: "New hire onboarding procedures", FileName: "onboarding_checklist.pdf"},

		{Title: "Equipment Manual", Category: model.CategoryTechnician, Description: "Technical equipment operating instructions", FileName: "equipment_manual.pdf"},
		{Title: "Maintenance Schedule", Category: model.CategoryTechnician, Description: "Regular maintenance procedures", FileName: "maintenance_schedule.pdf"},
		{Title: "Troubleshooting Guide", Category: model.CategoryTechnician, Description: "Common technical issues resolution", FileName: "troubleshooting.pdf"},

		{Title: "Code of Conduct", Category: model.CategoryEmployee, Description: "Professional behavior guidelines", FileName: "code_of_conduct.pdf"},
		{Title: "Time Off Policy", Category: model.CategoryEmployee, Description: "Vacation and leave policies", FileName: "time_off_policy.pdf"},
		{Title: "Performance Review", Category: model.CategoryEmployee, Description: "Annual performance evaluation form", FileName: "performance_review.pdf"},
	}
}
