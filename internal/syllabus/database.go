package syllabus

import "github.com/noah-isme/study-planner-api/internal/models"

// examDatabase is the built-in registry of supported competitive exams.
// Weights are relative within one exam and are normalised by the planner,
// so mixed scales (marks, percentages) across exams are fine.
var examDatabase = map[string]models.Exam{
	"ca_final": {
		ID:            "ca_final",
		Label:         "Chartered Accountancy (CA Final)",
		Category:      "finance",
		ExamCode:      "CA-FINAL",
		Difficulty:    models.DifficultyExtreme,
		Duration:      "3-5 years",
		Frequency:     "May & November",
		OfficialSites: []string{"https://icai.org", "https://resource.cdn.icai.org"},
		Popularity:    95,
		Subjects: []models.Subject{
			{
				Name:            "Financial Reporting",
				Weight:          100,
				Type:            "Practical",
				TotalModules:    28,
				Topics:          []string{"Ind AS 115", "Consolidation", "Financial Instruments", "Fair Value"},
				RecommendedTime: 200,
				ReferenceBooks:  []string{"Padhuka", "DSCL"},
			},
			{
				Name:            "Advanced Financial Management",
				Weight:          100,
				Type:            "Practical",
				TotalModules:    24,
				Topics:          []string{"Portfolio Management", "Derivatives", "Forex", "Valuation"},
				RecommendedTime: 180,
			},
			{
				Name:            "Advanced Auditing",
				Weight:          100,
				Type:            "Theory",
				TotalModules:    22,
				Topics:          []string{"Standards on Auditing", "Professional Ethics", "Company Audit"},
				RecommendedTime: 160,
			},
			{
				Name:            "Direct Tax Laws",
				Weight:          100,
				Type:            "Hybrid",
				TotalModules:    26,
				Topics:          []string{"Assessment", "International Taxation", "Case Laws"},
				RecommendedTime: 190,
			},
			{
				Name:            "Indirect Tax Laws",
				Weight:          100,
				Type:            "Hybrid",
				TotalModules:    20,
				Topics:          []string{"GST", "Customs", "FTP"},
				RecommendedTime: 150,
			},
		},
	},
	"cs_executive": {
		ID:            "cs_executive",
		Label:         "Company Secretary (CS Executive)",
		Category:      "finance",
		ExamCode:      "CS-EXEC",
		Difficulty:    models.DifficultyHard,
		Duration:      "18-24 months",
		Frequency:     "June & December",
		OfficialSites: []string{"https://icsi.edu"},
		Popularity:    85,
		Subjects: []models.Subject{
			{Name: "Corporate Law", Weight: 100, Type: "Theory", TotalModules: 25},
			{Name: "Securities Law", Weight: 100, Type: "Hybrid", TotalModules: 20},
			{Name: "Economic Laws", Weight: 100, Type: "Theory", TotalModules: 22},
			{Name: "Tax Laws", Weight: 100, Type: "Practical", TotalModules: 18},
			{Name: "Governance", Weight: 100, Type: "Theory", TotalModules: 15},
		},
	},
	"upsc_cse": {
		ID:            "upsc_cse",
		Label:         "UPSC Civil Services (IAS/IPS)",
		Category:      "government",
		ExamCode:      "UPSC-CSE",
		Difficulty:    models.DifficultyExtreme,
		Duration:      "12-18 months",
		Frequency:     "Yearly",
		OfficialSites: []string{"https://upsc.gov.in", "https://www.pib.gov.in"},
		Popularity:    98,
		Subjects: []models.Subject{
			{
				Name:            "General Studies I",
				Weight:          200,
				Type:            "Theory",
				TotalModules:    40,
				Topics:          []string{"History", "Geography", "Society"},
				RecommendedTime: 300,
			},
			{
				Name:            "General Studies II",
				Weight:          200,
				Type:            "Theory",
				TotalModules:    35,
				Topics:          []string{"Polity", "Governance", "International Relations"},
				RecommendedTime: 280,
			},
			{
				Name:            "General Studies III",
				Weight:          200,
				Type:            "Theory",
				TotalModules:    38,
				Topics:          []string{"Economy", "Environment", "Science & Tech", "Security"},
				RecommendedTime: 290,
			},
			{
				Name:            "General Studies IV",
				Weight:          200,
				Type:            "Theory",
				TotalModules:    18,
				Topics:          []string{"Ethics", "Integrity", "Aptitude"},
				RecommendedTime: 150,
			},
			{
				Name:            "Essay",
				Weight:          200,
				Type:            "Language",
				TotalModules:    10,
				RecommendedTime: 100,
			},
		},
	},
	"neet_ug": {
		ID:            "neet_ug",
		Label:         "NEET UG (Medical Entrance)",
		Category:      "medical",
		ExamCode:      "NEET-UG",
		Difficulty:    models.DifficultyExtreme,
		Duration:      "12-24 months",
		Frequency:     "Yearly",
		OfficialSites: []string{"https://nta.ac.in", "https://neet.nta.nic.in"},
		Popularity:    97,
		Subjects: []models.Subject{
			{
				Name:            "Physics",
				Weight:          180,
				Type:            "Conceptual",
				TotalModules:    30,
				Topics:          []string{"Mechanics", "Optics", "Electromagnetism", "Modern Physics"},
				RecommendedTime: 250,
			},
			{
				Name:            "Chemistry",
				Weight:          180,
				Type:            "Mixed",
				TotalModules:    28,
				Topics:          []string{"Organic", "Inorganic", "Physical", "Biomolecules"},
				RecommendedTime: 240,
			},
			{
				Name:            "Biology",
				Weight:          360,
				Type:            "Memory",
				TotalModules:    45,
				Topics:          []string{"Zoology", "Botany", "Human Physiology", "Genetics"},
				RecommendedTime: 400,
			},
		},
	},
	"jee_main": {
		ID:            "jee_main",
		Label:         "JEE Main (Engineering)",
		Category:      "engineering",
		ExamCode:      "JEE-MAIN",
		Difficulty:    models.DifficultyExtreme,
		Duration:      "24 months",
		Frequency:     "Twice Yearly",
		OfficialSites: []string{"https://jeemain.nta.nic.in"},
		Popularity:    96,
		Subjects: []models.Subject{
			{
				Name:            "Physics",
				Weight:          100,
				Type:            "Conceptual",
				TotalModules:    25,
				Topics:          []string{"Mechanics", "Thermodynamics", "Waves", "Modern"},
				RecommendedTime: 300,
			},
			{
				Name:            "Chemistry",
				Weight:          100,
				Type:            "Mixed",
				TotalModules:    23,
				Topics:          []string{"Physical", "Organic", "Inorganic"},
				RecommendedTime: 280,
			},
			{
				Name:            "Mathematics",
				Weight:          100,
				Type:            "Problem",
				TotalModules:    28,
				Topics:          []string{"Calculus", "Algebra", "Coordinate", "Trigonometry"},
				RecommendedTime: 320,
			},
		},
	},
	"ssc_cgl": {
		ID:            "ssc_cgl",
		Label:         "SSC CGL (Combined Graduate Level)",
		Category:      "government",
		ExamCode:      "SSC-CGL",
		Difficulty:    models.DifficultyHard,
		Duration:      "6-8 months",
		Frequency:     "Yearly",
		OfficialSites: []string{"https://ssc.nic.in"},
		Popularity:    90,
		Subjects: []models.Subject{
			{Name: "General Intelligence", Weight: 50, Type: "Logical", TotalModules: 15},
			{Name: "General Awareness", Weight: 50, Type: "Theory", TotalModules: 25},
			{Name: "Quantitative Aptitude", Weight: 50, Type: "Practical", TotalModules: 20},
			{Name: "English Comprehension", Weight: 50, Type: "Language", TotalModules: 18},
		},
	},
	"gate": {
		ID:            "gate",
		Label:         "GATE (Graduate Aptitude Test)",
		Category:      "engineering",
		ExamCode:      "GATE",
		Difficulty:    models.DifficultyExtreme,
		Duration:      "12 months",
		Frequency:     "Yearly",
		OfficialSites: []string{"https://gate.iitk.ac.in"},
		Popularity:    92,
		Subjects: []models.Subject{
			{Name: "Technical Subjects", Weight: 100, Type: "Technical", TotalModules: 35},
			{Name: "Engineering Mathematics", Weight: 15, Type: "Theory", TotalModules: 12},
			{Name: "General Aptitude", Weight: 15, Type: "Logical", TotalModules: 10},
		},
	},
	"clat": {
		ID:            "clat",
		Label:         "CLAT (Law Entrance)",
		Category:      "law",
		ExamCode:      "CLAT",
		Difficulty:    models.DifficultyHard,
		Duration:      "12 months",
		Frequency:     "Yearly",
		OfficialSites: []string{"https://consortiumofnlus.ac.in"},
		Popularity:    88,
		Subjects: []models.Subject{
			{Name: "Legal Reasoning", Weight: 150, Type: "Logical", TotalModules: 20},
			{Name: "Logical Reasoning", Weight: 70, Type: "Logical", TotalModules: 15},
			{Name: "English Language", Weight: 70, Type: "Language", TotalModules: 18},
			{Name: "Current Affairs", Weight: 70, Type: "Dynamic", TotalModules: 25},
			{Name: "Quantitative Techniques", Weight: 40, Type: "Practical", TotalModules: 12},
		},
	},
	"nda": {
		ID:            "nda",
		Label:         "NDA (National Defence Academy)",
		Category:      "defense",
		ExamCode:      "NDA",
		Difficulty:    models.DifficultyHard,
		Duration:      "6-8 months",
		Frequency:     "Twice Yearly",
		OfficialSites: []string{"https://upsc.gov.in"},
		Popularity:    85,
		Subjects: []models.Subject{
			{Name: "Mathematics", Weight: 300, Type: "Practical", TotalModules: 25},
			{Name: "General Ability Test", Weight: 600, Type: "Theory", TotalModules: 40},
		},
	},
	"ibps_po": {
		ID:            "ibps_po",
		Label:         "IBPS PO (Probationary Officer)",
		Category:      "banking",
		ExamCode:      "IBPS-PO",
		Difficulty:    models.DifficultyHard,
		Duration:      "6 months",
		Frequency:     "Yearly",
		OfficialSites: []string{"https://ibps.in"},
		Popularity:    89,
		Subjects: []models.Subject{
			{Name: "Reasoning Ability", Weight: 60, Type: "Logical", TotalModules: 20},
			{Name: "English Language", Weight: 40, Type: "Language", TotalModules: 18},
			{Name: "Quantitative Aptitude", Weight: 50, Type: "Practical", TotalModules: 22},
			{Name: "General Awareness", Weight: 40, Type: "Theory", TotalModules: 30},
			{Name: "Computer Knowledge", Weight: 20, Type: "Technical", TotalModules: 12},
		},
	},
	"cat": {
		ID:            "cat",
		Label:         "CAT (MBA Entrance)",
		Category:      "management",
		ExamCode:      "CAT",
		Difficulty:    models.DifficultyExtreme,
		Duration:      "12 months",
		Frequency:     "Yearly",
		OfficialSites: []string{"https://iimcat.ac.in"},
		Popularity:    94,
		Subjects: []models.Subject{
			{Name: "Quantitative Ability", Weight: 66, Type: "Practical", TotalModules: 25},
			{Name: "Verbal Ability", Weight: 66, Type: "Language", TotalModules: 22},
			{Name: "Logical Reasoning", Weight: 66, Type: "Logical", TotalModules: 20},
			{Name: "Data Interpretation", Weight: 66, Type: "Practical", TotalModules: 18},
		},
	},
	"cma_final": {
		ID:            "cma_final",
		Label:         "CMA (Cost & Management Accountant)",
		Category:      "finance",
		ExamCode:      "CMA-FINAL",
		Difficulty:    models.DifficultyHard,
		Duration:      "18-24 months",
		Frequency:     "June & December",
		OfficialSites: []string{"https://icmai.in"},
		Popularity:    82,
		Subjects: []models.Subject{
			{Name: "Strategic Cost Management", Weight: 100, Type: "Practical", TotalModules: 20},
			{Name: "Strategic Performance Management", Weight: 100, Type: "Practical", TotalModules: 18},
			{Name: "Direct Tax Laws", Weight: 100, Type: "Hybrid", TotalModules: 22},
			{Name: "Indirect Tax Laws", Weight: 100, Type: "Hybrid", TotalModules: 20},
		},
	},
}

// examCategories groups exams for the category listing endpoint.
var examCategories = []models.ExamCategory{
	{ID: "finance", Label: "Finance & Accounting"},
	{ID: "government", Label: "Government Services"},
	{ID: "medical", Label: "Medical Entrance"},
	{ID: "engineering", Label: "Engineering"},
	{ID: "law", Label: "Law"},
	{ID: "defense", Label: "Defense Services"},
	{ID: "banking", Label: "Banking & Insurance"},
	{ID: "management", Label: "Management"},
}
