package model

import (
	"time"
)

type Book struct {
	ID            int    `json:"id" db:"id"`
	Title         string `json:"title" db:"title"`
	Author        string `json:"author" db:"author"`
	PublishedYear int    `json:"publishedYear" db:"published_year"`
	Stock         int    `json:"stock" db:"stock"`
	CoverImageURL string `json:"coverImageUrl" db:"cover_image_url"`
}

type Student struct {
	ID     int    `json:"id" db:"id"`
	NISN   string `json:"nisn" db:"nisn"`
	Name   string `json:"name" db:"name"`
	Class  string `json:"class" db:"class"`
	Active bool   `json:"active" db:"active"`
}

type Borrow struct {
	ID         int        `json:"id" db:"id"`
	StudentID  int        `json:"studentId" db:"student_id"`
	BookID     int        `json:"bookId" db:"book_id"`
	BorrowDate time.Time  `json:"borrowDate" db:"borrow_date"`
	DueDate    time.Time  `json:"dueDate" db:"due_date"`
	ReturnDate *time.Time `json:"returnDate" db:"return_date"`
}

func (b Borrow) Outstanding() bool {
	return b.ReturnDate == nil
}

type CreateBorrowRequest struct {
	StudentID int       `json:"studentId" validate:"required,gt=0"`
	BookID    int       `json:"bookId" validate:"required,gt=0"`
	DueDate   time.Time `json:"dueDate" validate:"required"`
}

type IDsRequest struct {
	IDs []int `json:"ids" validate:"required,min=1,dive,gt=0"`
}

type RecommendationSource string

const (
	SourceRule       RecommendationSource = "RULE"
	SourcePopularity RecommendationSource = "POPULARITY"
)

type RecommendedBook struct {
	Book   `json:",inline"`
	Source RecommendationSource `json:"source"`
	Score  float64              `json:"score"`
}

type Recommendations struct {
	Student         Student           `json:"student"`
	ClusterID       *int              `json:"clusterId"`
	BatchID         *int              `json:"batchId"`
	Recommendations []RecommendedBook `json:"recommendations"`
}

type Batch struct {
	ID               int       `json:"id" db:"id"`
	GeneratedAt      time.Time `json:"generatedAt" db:"generated_at"`
	IsActive         bool      `json:"isActive" db:"is_active"`
	ClusterCount     int       `json:"clusterCount" db:"cluster_count"`
	StudentCount     int       `json:"studentCount" db:"student_count"`
	TransactionCount int       `json:"transactionCount" db:"transaction_count"`
	RuleCount        int       `json:"ruleCount" db:"rule_count"`
	MinSupport       float64   `json:"minSupport" db:"min_support"`
	MinConfidence    float64   `json:"minConfidence" db:"min_confidence"`
}

type AssociationRule struct {
	ClusterID     int     `json:"clusterId" db:"cluster_id"`
	Antecedent    []int   `json:"antecedent" db:"antecedent"`
	AntecedentKey string  `json:"antecedentKey" db:"antecedent_key"`
	Consequent    []int   `json:"consequent" db:"consequent"`
	Support       float64 `json:"support" db:"support"`
	Confidence    float64 `json:"confidence" db:"confidence"`
}

type ClusterSize struct {
	ClusterID int `json:"clusterId" db:"cluster_id"`
	Students  int `json:"students" db:"students"`
}

type BatchDetail struct {
	Batch    `json:",inline"`
	Clusters []ClusterSize     `json:"clusters"`
	Rules    []AssociationRule `json:"rules"`
}

type SummaryStatus string

const (
	SummaryNoData  SummaryStatus = "no_data"
	SummarySuccess SummaryStatus = "success"
)

type BatchSummary struct {
	BatchID              *int          `json:"batchId"`
	RuleCount            int           `json:"ruleCount"`
	RecommendationsCount int           `json:"recommendationsCount"`
	StudentsCount        int           `json:"studentsCount"`
	Status               SummaryStatus `json:"status"`
	GeneratedAt          *time.Time    `json:"generatedAt,omitempty"`
}

type PopularBook struct {
	BookID  int `json:"bookId" db:"book_id"`
	Borrows int `json:"borrows" db:"borrows"`
}

type RunState string

const (
	RunRunning   RunState = "RUNNING"
	RunSucceeded RunState = "SUCCEEDED"
	RunFailed    RunState = "FAILED"
)

type GenerationRun struct {
	RunID      string     `json:"runId"`
	State      RunState   `json:"state"`
	AcceptedAt time.Time  `json:"acceptedAt"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	BatchID    *int       `json:"batchId,omitempty"`
	RuleCount  int        `json:"ruleCount"`
	Error      string     `json:"error,omitempty"`
}
