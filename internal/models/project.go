package models

// ProjectStatus is the nominal lifecycle of a project. Transitions are not
// enforced: the status update operation accepts any member of the enum
// (see CanTransition).
type ProjectStatus string

const (
	StatusDraft              ProjectStatus = "DRAFT"
	StatusAIScoring          ProjectStatus = "AI_SCORING"
	StatusDuplicateCheck     ProjectStatus = "DUPLICATE_CHECK"
	StatusResourceGeneration ProjectStatus = "RESOURCE_GENERATION"
	StatusRefinement         ProjectStatus = "REFINEMENT"
	StatusActive             ProjectStatus = "ACTIVE"
	StatusNGOPartnered       ProjectStatus = "NGO_PARTNERED"
	StatusRejected           ProjectStatus = "REJECTED"
	StatusAppealPending      ProjectStatus = "APPEAL_PENDING"
	StatusSuccess            ProjectStatus = "SUCCESS"
)

var projectStatuses = map[ProjectStatus]bool{
	StatusDraft:              true,
	StatusAIScoring:          true,
	StatusDuplicateCheck:     true,
	StatusResourceGeneration: true,
	StatusRefinement:         true,
	StatusActive:             true,
	StatusNGOPartnered:       true,
	StatusRejected:           true,
	StatusAppealPending:      true,
	StatusSuccess:            true,
}

// IsValid reports whether s is a member of the status enum.
func (s ProjectStatus) IsValid() bool {
	return projectStatuses[s]
}

// CanTransition reports whether a project may move from its current status
// to the target. The lifecycle is advisory: any valid target is allowed.
// A stricter deployment can replace this with a transition table without
// touching the handlers.
func (p *Project) CanTransition(target ProjectStatus) bool {
	return target.IsValid()
}

// Project is a neighborhood improvement project. Participant bookkeeping
// keys on display names, not user ids, mirroring the platform's wire
// contract; two users sharing a name are indistinguishable here.
type Project struct {
	ID                  string             `gorm:"primaryKey;size:36" json:"id"`
	Title               string             `gorm:"size:255;not null" json:"title"`
	Description         string             `gorm:"type:text" json:"description"`
	Budget              float64            `json:"budget"`
	Image               string             `gorm:"size:500" json:"image"`
	Location            string             `gorm:"size:255" json:"location"`
	Coordinates         *Coordinates       `gorm:"type:text" json:"coordinates"`
	Status              ProjectStatus      `gorm:"size:50;index" json:"status"`
	InitiatorID         string             `gorm:"size:36;index" json:"initiatorId"`
	NPOID               *string            `gorm:"size:36;index" json:"npoId"`
	CreatedAt           string             `gorm:"size:20" json:"createdAt"` // YYYY-MM-DD
	Participants        StringList         `gorm:"type:text" json:"participants"`
	PendingJoinRequests StringList         `gorm:"type:text" json:"pendingJoinRequests"`
	NGOPartnerRequests  PartnerRequestList `gorm:"column:ngo_partner_requests;type:text" json:"ngoPartnerRequests"`
	Resources           ResourceLineList   `gorm:"type:text" json:"resources"`
	Type                *string            `gorm:"size:100" json:"type"`
	AIScore             float64            `gorm:"column:ai_score;default:0" json:"ai_score"`
	RejectionReason     *string            `gorm:"size:500" json:"rejection_reason"`
	SearchRadius        int                `gorm:"default:500" json:"search_radius"`
}

func (Project) TableName() string { return "projects" }

// ApplyEstimate replaces the resource line items wholesale and recomputes
// the budget as the line-item sum.
func (p *Project) ApplyEstimate(lines ResourceLineList) {
	if lines == nil {
		lines = ResourceLineList{}
	}
	p.Resources = lines
	p.Budget = lines.Total()
}

// RequestJoin adds name to the pending join requests. Idempotent: a name
// already pending or already participating is left alone. Reports whether
// the pending list changed.
func (p *Project) RequestJoin(name string) bool {
	if p.PendingJoinRequests.Contains(name) || p.Participants.Contains(name) {
		return false
	}
	p.PendingJoinRequests = append(p.PendingJoinRequests, name)
	return true
}

// ResolveJoinRequest removes name from the pending list; when approve is
// true the name is promoted to participants unless already a member.
// Resolving a name that is not pending is a no-op. Reports whether the
// project changed.
func (p *Project) ResolveJoinRequest(name string, approve bool) bool {
	if !p.PendingJoinRequests.Remove(name) {
		return false
	}
	if approve && !p.Participants.Contains(name) {
		p.Participants = append(p.Participants, name)
	}
	return true
}

// AcceptPartnership records the NPO as the project partner and forces the
// status to NGO_PARTNERED regardless of the current status.
func (p *Project) AcceptPartnership(npoID string) {
	p.NPOID = &npoID
	p.Status = StatusNGOPartnered
}

// AddPartnerRequest appends an NPO partner request unless a request from
// the same NPO already exists; the first request wins. Reports whether the
// list changed.
func (p *Project) AddPartnerRequest(req PartnerRequest) bool {
	for _, r := range p.NGOPartnerRequests {
		if r.NPOID == req.NPOID {
			return false
		}
	}
	p.NGOPartnerRequests = append(p.NGOPartnerRequests, req)
	return true
}

// ResolveAppeal sets the status to ACTIVE on approval and REJECTED
// otherwise, with no guard on the prior status.
func (p *Project) ResolveAppeal(approve bool) {
	if approve {
		p.Status = StatusActive
	} else {
		p.Status = StatusRejected
	}
}
