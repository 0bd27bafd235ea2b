// Package types holds the canonical record shapes shared by the
// remote fetcher, the fallback datasets and the view controllers.
// Remote rows are normalized into these shapes before any controller
// sees them; presentation code never touches raw store payloads.
package types

import "marvelous/internal/branch"

// ProjectType classifies a production.
type ProjectType string

const (
	ProjectMariage   ProjectType = "Mariage"
	ProjectStudio    ProjectType = "Studio"
	ProjectCorporate ProjectType = "Corporate"
	ProjectEvent     ProjectType = "Event"
)

// ProjectStatus is an opaque lifecycle label; transitions are driven
// by the back office, the dashboard only displays and filters on it.
type ProjectStatus string

const (
	StatusPlanning   ProjectStatus = "Planning"
	StatusConfirmed  ProjectStatus = "Confirmed"
	StatusInProgress ProjectStatus = "In Progress"
	StatusCompleted  ProjectStatus = "Completed"
	StatusDelivered  ProjectStatus = "Delivered"
)

// TaskStatus tracks a single deliverable inside a project.
type TaskStatus string

const (
	TaskPending    TaskStatus = "Pending"
	TaskInProgress TaskStatus = "In Progress"
	TaskCompleted  TaskStatus = "Completed"
)

// Urgency is the project's priority flag.
type Urgency string

const (
	UrgencyLow    Urgency = "low"
	UrgencyMedium Urgency = "medium"
	UrgencyHigh   Urgency = "high"
)

// Task is owned exclusively by its project and destroyed with it.
type Task struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Status     TaskStatus `json:"status"`
	Deadline   string     `json:"deadline,omitempty"`
	AssignedTo string     `json:"assignedTo,omitempty"`
}

// Project is a booked production (wedding, studio shoot, corporate
// event). Budget is denominated in the branch's native currency.
type Project struct {
	ID         string        `json:"id"`
	ClientName string        `json:"clientName"`
	Type       ProjectType   `json:"type"`
	Date       string        `json:"date"`
	Status     ProjectStatus `json:"status"`
	Location   string        `json:"location"`
	Budget     float64       `json:"budget"`
	Branch     branch.Branch `json:"branch"`
	Formula    string        `json:"formula"`
	Tasks      []Task        `json:"tasks"`
	Urgency    Urgency       `json:"urgency"`
}

func (p Project) BranchTag() branch.Branch { return p.Branch }

// Department is the closed set of production roles.
type Department string

const (
	DeptMontage      Department = "Montage Vidéo"
	DeptRetouche     Department = "Retouche Photo"
	DeptPhotographie Department = "Photographie"
	DeptCadrage      Department = "Cadrage"
	DeptGraphisme    Department = "Graphisme"
	DeptMarketing    Department = "Marketing"
	DeptMakeup       Department = "Make-up"
)

// StaffStatus mirrors the HR board labels.
type StaffStatus string

const (
	StaffActif     StaffStatus = "Actif"
	StaffEnMission StaffStatus = "En mission"
	StaffEnPause   StaffStatus = "En pause"
)

// Skill is a rated competency, level in [0, 100].
type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// ScorePoint is one month of the performance history.
type ScorePoint struct {
	Month string `json:"month"`
	Score int    `json:"score"`
}

// Staff is a team member. Workload is a 7-slot weekly vector where
// 0=none, 1=partial, 2=full day. DeliveryDelay is signed days;
// negative means ahead of schedule. Zero means "not tracked".
type Staff struct {
	ID                string        `json:"id"`
	Name              string        `json:"name"`
	Role              string        `json:"role"`
	Department        Department    `json:"department"`
	Status            StaffStatus   `json:"status"`
	Branch            branch.Branch `json:"branch"`
	Availability      string        `json:"availability"`
	PerformanceScore  int           `json:"performanceScore"`
	Efficiency        float64       `json:"efficiency"`
	ProjectsCompleted int           `json:"projectsCompleted"`
	Email             string        `json:"email"`
	Phone             string        `json:"phone"`
	Skills            []Skill       `json:"skills"`
	Workload          [7]int        `json:"workload"`
	DeliveryDelay     int           `json:"deliveryDelay,omitempty"`
	Evolution         []ScorePoint  `json:"evolutionData"`
}

func (s Staff) BranchTag() branch.Branch { return s.Branch }

// EquipmentCategory classifies gear.
type EquipmentCategory string

const (
	CatCamera    EquipmentCategory = "Caméra"
	CatObjectif  EquipmentCategory = "Objectif"
	CatDrone     EquipmentCategory = "Drone"
	CatEclairage EquipmentCategory = "Éclairage"
	CatAudio     EquipmentCategory = "Audio"
	CatAccessory EquipmentCategory = "Accessoire"
)

// EquipmentStatus tracks gear availability.
type EquipmentStatus string

const (
	EquipAvailable   EquipmentStatus = "Available"
	EquipInUse       EquipmentStatus = "In Use"
	EquipMaintenance EquipmentStatus = "Maintenance"
	EquipBroken      EquipmentStatus = "Broken"
)

// Equipment is a tracked piece of gear. AssignedTo and
// CurrentProject are set only while InUse.
type Equipment struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Category        EquipmentCategory `json:"category"`
	Status          EquipmentStatus   `json:"status"`
	SerialNumber    string            `json:"serialNumber"`
	Branch          branch.Branch     `json:"branch"`
	AssignedTo      string            `json:"assignedTo,omitempty"`
	CurrentProject  string            `json:"currentProject,omitempty"`
	LastMaintenance string            `json:"lastMaintenance,omitempty"`
}

func (e Equipment) BranchTag() branch.Branch { return e.Branch }

// CustomerStatus is the CRM pipeline stage.
type CustomerStatus string

const (
	CustomerLead   CustomerStatus = "Lead"
	CustomerActive CustomerStatus = "Active"
	CustomerPast   CustomerStatus = "Past"
)

// Interaction is one CRM touchpoint.
type Interaction struct {
	ID      string `json:"id"`
	Type    string `json:"type"` // Email, Call, Meeting, Portal
	Date    string `json:"date"`
	Summary string `json:"summary"`
}

// GalleryLink is a delivered-photo gallery shared with a client.
type GalleryLink struct {
	ID        string `json:"id"`
	Label     string `json:"label"`
	URL       string `json:"url"`
	IsPrivate bool   `json:"isPrivate"`
}

// Customer is a CRM record. Projects holds project ids.
type Customer struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Email            string         `json:"email"`
	Phone            string         `json:"phone"`
	Branch           branch.Branch  `json:"branch"`
	Status           CustomerStatus `json:"status"`
	Category         string         `json:"category"` // Wedding, Studio, VIP
	TotalRevenue     float64        `json:"totalRevenue"`
	Projects         []string       `json:"projects"`
	Interactions     []Interaction  `json:"interactions"`
	Galleries        []GalleryLink  `json:"galleries"`
	PortalAccessCode string         `json:"portalAccessCode"`
}

func (c Customer) BranchTag() branch.Branch { return c.Branch }

// StudioSession is a scheduled studio booking.
type StudioSession struct {
	ID           string        `json:"id"`
	ClientName   string        `json:"clientName"`
	Branch       branch.Branch `json:"branch"`
	Type         string        `json:"type"` // Portrait, Fashion, Engagement, Product, Maternité, Famille
	Date         string        `json:"date"`
	Duration     string        `json:"duration"`
	Photographer string        `json:"photographer"`
	Status       string        `json:"status"` // Scheduled, Completed, Cancelled
}

func (s StudioSession) BranchTag() branch.Branch { return s.Branch }

// StudioClient is a walk-in studio customer record.
type StudioClient struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Branch      branch.Branch `json:"branch"`
	Email       string        `json:"email"`
	Phone       string        `json:"phone"`
	LastSession string        `json:"lastSession"`
	TotalSpent  float64       `json:"totalSpent"`
}

func (c StudioClient) BranchTag() branch.Branch { return c.Branch }

// ExpenseType splits the cost ledger for separate aggregation.
type ExpenseType string

const (
	ExpenseFixed    ExpenseType = "Fixe"
	ExpenseVariable ExpenseType = "Variable"
)

// StudioExpense is one line of the studio cost ledger, in the
// branch's native currency.
type StudioExpense struct {
	ID          string        `json:"id"`
	Branch      branch.Branch `json:"branch"`
	Category    string        `json:"category"`
	Type        ExpenseType   `json:"type"`
	Amount      float64       `json:"amount"`
	Date        string        `json:"date"`
	Description string        `json:"description"`
}

func (e StudioExpense) BranchTag() branch.Branch { return e.Branch }

// ContentStatus tracks an editorial-calendar entry.
type ContentStatus string

const (
	ContentDraft     ContentStatus = "Draft"
	ContentScheduled ContentStatus = "Scheduled"
	ContentPublished ContentStatus = "Published"
)

// ContentPost is a scheduled social publication. Marketing records
// are shared group-wide and carry no branch tag.
type ContentPost struct {
	ID       string        `json:"id"`
	Platform string        `json:"platform"` // Instagram, TikTok, Facebook, LinkedIn
	Title    string        `json:"title"`
	Date     string        `json:"date"`
	Status   ContentStatus `json:"status"`
	Type     string        `json:"type"` // Video/Reel, Photo, Carousel, Story
	Content  string        `json:"content"`
}

// MarketingTemplate is a reusable copy block.
type MarketingTemplate struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Category string `json:"category"` // Promotion, Tips, BehindTheScenes
	Body     string `json:"body"`
}

// CampaignROI is one month of ad-spend vs generated revenue.
type CampaignROI struct {
	Month   string  `json:"month"`
	AdSpend float64 `json:"adSpend"`
	Revenue float64 `json:"revenue"`
	Leads   int     `json:"leads"`
}
