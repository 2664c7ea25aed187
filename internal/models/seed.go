package models

import (
	"github.com/civicgrid/initiative/backend/internal/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

// seedDemoData loads a small demo catalog on an empty database: accounts,
// projects, the NPO directory, priced resources, opportunities, templates
// and knowledge-base entries. The registries have no in-app create path,
// so without this their list endpoints would stay empty forever. A
// database that already has users is left untouched.
func seedDemoData(db *gorm.DB) error {
	var count int64
	db.Model(&User{}).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := utils.HashPassword("password123")
	if err != nil {
		return err
	}

	users := []User{
		{
			ID:       "user-1",
			Email:    "citizen@example.com",
			Password: hashed,
			Role:     RoleInitiator,
			Name:     "Anna Volkova",
			Avatar:   strPtr("/placeholder.svg?height=48&width=48"),
			Phone:    strPtr("+7 (912) 000-11-22"),
			Bio:      strPtr("Active citizen, I love my city."),
		},
		{
			ID:           "npo-1",
			Email:        "npo@example.com",
			Password:     hashed,
			Role:         RoleNPO,
			Name:         "City Joy Foundation",
			Organization: strPtr("City Joy Foundation"),
			Avatar:       strPtr("/placeholder.svg?height=48&width=48"),
		},
		{
			ID:       "admin-1",
			Email:    "admin@example.com",
			Password: hashed,
			Role:     RoleAdmin,
			Name:     "System Administrator",
			Avatar:   strPtr("/placeholder.svg?height=48&width=48"),
		},
	}
	if err := db.Create(&users).Error; err != nil {
		return err
	}

	projects := []Project{
		{
			ID:          "proj-1",
			Title:       "Inclusive playground 'Rainbow'",
			Description: "A modern play area adapted for children with limited mobility.",
			Budget:      850000,
			Image:       "https://images.unsplash.com/photo-1576013551627-0cc20b96c2a7?q=80&w=800&auto=format&fit=crop",
			Location:    "Oktyabrsky district, Lunacharsky st.",
			Coordinates: &Coordinates{Lat: 56.8380, Lng: 60.6030},
			Status:      StatusActive,
			InitiatorID: "user-1",
			NPOID:       strPtr("npo-1"),
			CreatedAt:   "2024-01-15",
			Participants: StringList{
				"Anna Volkova", "Ivan Petrov",
			},
			PendingJoinRequests: StringList{
				"Alexander Matrosov", "Maria Curie",
			},
			NGOPartnerRequests: PartnerRequestList{
				{NPOID: "npo-2", NPOName: "Eco Watchers", Message: "We can provide volunteers and landscaping experts."},
			},
			Resources:    ResourceLineList{},
			AIScore:      92,
			SearchRadius: 500,
		},
		{
			ID:          "proj-2",
			Title:       "Eco square 'Green Island'",
			Description: "Turning an abandoned wasteland into a blooming public square.",
			Budget:      1200000,
			Image:       "https://images.unsplash.com/photo-1585829365291-1762f55e972e?q=80&w=800&auto=format&fit=crop",
			Location:    "Leninsky district, Vaynera st.",
			Coordinates: &Coordinates{Lat: 56.8395, Lng: 60.6060},
			Status:      StatusSuccess,
			InitiatorID: "user-1",
			NPOID:       strPtr("npo-1"),
			CreatedAt:   "2023-11-20",
			Participants: StringList{
				"Anna Volkova", "Ivan Petrov", "Elena Sokolova",
			},
			PendingJoinRequests: StringList{},
			NGOPartnerRequests:  PartnerRequestList{},
			Resources:           ResourceLineList{},
			AIScore:             88,
			SearchRadius:        500,
		},
	}
	if err := db.Create(&projects).Error; err != nil {
		return err
	}

	npos := []NPO{
		{
			ID:               "npo-1",
			Name:             "City Joy Foundation",
			Expertise:        datatypes.JSONSlice[string]{"Public spaces", "Community building"},
			Rating:           5.0,
			Avatar:           "/placeholder.svg?height=48&width=48",
			ActiveProjects:   3,
			PendingRequests:  5,
			Status:           strPtr(NPOStatusApproved),
			RegistrationDate: strPtr("2023-01-10"),
		},
	}
	if err := db.Create(&npos).Error; err != nil {
		return err
	}

	catalog := []CatalogResource{
		{ID: "est-1", Resource: "Steel bench", Category: "Furniture", BasePrice: 15000, Quantity: 4},
		{ID: "est-2", Resource: "Rubber surfacing", Category: "Safety", BasePrice: 2500, Quantity: 40},
	}
	if err := db.Create(&catalog).Error; err != nil {
		return err
	}

	opportunities := []Opportunity{
		{
			ID:          "opp-1",
			Title:       "Public park renovation",
			Location:    "Yekaterinburg, Leninsky district",
			Budget:      380000,
			MatchReason: "Your public-space expertise is a perfect match",
			Tags:        datatypes.JSONSlice[string]{"Public space", "Parks"},
			InitiatorID: "user-1",
			Status:      "open",
		},
	}
	if err := db.Create(&opportunities).Error; err != nil {
		return err
	}

	details := []ProjectDetails{
		{
			ID:            "detail-1",
			ProjectID:     "proj-1",
			Stage:         "Construction",
			Progress:      65,
			NextMilestone: "Equipment installation by March 15, 2024",
			Collaborators: datatypes.JSON(`[{"name":"Anna Volkova","role":"Initiator","avatar":"/placeholder.svg"},{"name":"City Joy Foundation team","role":"NPO partner","avatar":"/placeholder.svg"}]`),
			Documents:     datatypes.JSON(`[{"name":"Project proposal.pdf","type":"PDF","date":"2024-01-15","url":"#"}]`),
			Budget:        BudgetBreakdown{Spent: 292500, Remaining: 157500, Total: 450000},
		},
	}
	if err := db.Create(&details).Error; err != nil {
		return err
	}

	templates := []Template{
		{ID: "temp-1", Name: "Standard proposal", Category: "Applications", Content: "# Template", LastModified: "2024-02-15"},
	}
	if err := db.Create(&templates).Error; err != nil {
		return err
	}

	kb := []KnowledgeBaseEntry{
		{ID: "kb-1", Title: "Inclusive playground", Region: "Moscow", Budget: 420000, Outcomes: "500+ children served", Tags: datatypes.JSONSlice[string]{"Accessibility"}},
	}
	return db.Create(&kb).Error
}
