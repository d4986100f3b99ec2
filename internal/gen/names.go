package gen

// Name pools for synthetic records. Picks are made with the generator's
// seeded source so output is reproducible for a given seed.

var funderTypes = []string{"Federal", "Foundation", "Corporate", "State", "Individual"}

var purposes = []string{
	"Youth Education Programs",
	"Healthcare Access",
	"Food Security Initiatives",
	"Mental Health Services",
	"Job Training and Placement",
	"Housing Assistance",
	"Arts and Culture Programming",
	"Environmental Conservation",
}

var grantNameSuffixes = []string{"Initiative", "Program", "Project"}

var reportingFrequencies = []string{"Quarterly", "Semi-Annual", "Annual"}

var budgetCategoryNames = []string{
	"Personnel Salaries",
	"Fringe Benefits",
	"Program Supplies",
	"Equipment",
	"Travel",
	"Consultants",
	"Facilities",
	"Indirect Costs",
}

var deliverableNames = []string{
	"Quarterly Financial Report",
	"Program Outcome Report",
	"Participant Survey Results",
	"Annual Evaluation",
	"Site Visit Preparation",
	"Interim Progress Report",
	"Final Report",
	"Budget Modification Request",
}

var reportTypes = []string{"Financial Report", "Programmatic Report", "Interim Report", "Final Report"}

var ageGroups = []string{"0-5", "6-12", "13-17", "18-24", "25-44", "45-64", "65+"}

var demographics = []string{"Low Income", "Minority", "Veteran", "Disabled", "Homeless", "General"}

var staffRoles = []string{"Program Director", "Program Manager", "Case Manager", "Administrative Assistant", "Evaluator"}

var baseSalaries = map[string]float64{
	"Program Director":         90000,
	"Program Manager":          65000,
	"Case Manager":             50000,
	"Administrative Assistant": 40000,
	"Evaluator":                70000,
}

// Company-style names double as funders and expense vendors.
var companyNames = []string{
	"Harbor Light Foundation",
	"Meridian Community Trust",
	"Blue Spruce Philanthropies",
	"Cedarbrook Fund",
	"Atlas Regional Partners",
	"Northgate Giving Alliance",
	"Summit Charitable Group",
	"Riverstone Foundation",
	"Lakeview Civic Fund",
	"Pinnacle Outreach Trust",
	"Crestline Supply Co",
	"Fairfield Office Solutions",
	"Brightway Consulting",
	"Oakdale Print and Media",
	"Valley Transit Services",
	"Ironwood Equipment Rental",
	"Clearwater Catering",
	"Stonebridge Facilities Group",
	"Redwood Training Associates",
	"Hillcrest Technology Partners",
}

var firstNames = []string{
	"Maria", "James", "Aisha", "David", "Elena", "Marcus", "Priya", "Thomas",
	"Rosa", "Kevin", "Danielle", "Omar", "Grace", "Victor", "Naomi", "Samuel",
	"Lucia", "Derek", "Yuki", "Andre",
}

var lastNames = []string{
	"Alvarez", "Chen", "Washington", "Okafor", "Novak", "Patel", "Reyes",
	"Lindqvist", "Osei", "Tanaka", "Moreau", "Hughes", "Delgado", "Kim",
	"Foster", "Ibrahim", "Carlson", "Nguyen", "Brennan", "Silva",
}

var expensePhrases = []string{
	"monthly program operations",
	"workshop materials and printing",
	"client transportation support",
	"facilitator fees",
	"outreach event costs",
	"software licensing",
	"venue rental",
	"staff training session",
	"participant incentives",
	"field supplies restock",
}

var deliverableNotes = []string{
	"Awaiting funder feedback on prior submission.",
	"Draft circulated to program staff for review.",
	"Data collection complete, analysis in progress.",
	"Requires updated budget figures from finance.",
	"Funder granted a short extension last cycle.",
	"Template changed this year, rework needed.",
}
