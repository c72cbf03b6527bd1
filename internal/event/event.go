package event

// Status is the moderation status of a listing.
type Status string

const (
	StatusPublished Status = "published"
	StatusPending   Status = "pending"
	StatusRejected  Status = "rejected"
)

// Event represents a single exhibition listing. The classification
// engine treats events as immutable values; StartDate and EndDate are
// the only fields it inspects besides the venue/title/host text.
// Invariant: EndDate is never before StartDate (enforced at submission).
type Event struct {
	// ID is a ULID that uniquely identifies this listing
	ID string `json:"id"`

	// Title is the exhibition title
	Title string `json:"title"`

	// HostName is the organizer or artist name (nullable)
	HostName *string `json:"host_name"`

	// Social announcement links (all nullable)
	XURL       *string `json:"x_url"`
	IGURL      *string `json:"ig_url"`
	ThreadsURL *string `json:"threads_url"`

	// Venue is the free-text venue name
	Venue string `json:"venue"`

	// Address is the street address (nullable)
	Address *string `json:"address"`

	// Prefecture is one of the 47 Japanese prefectures
	Prefecture string `json:"prefecture"`

	// Price is free-text admission info (nullable)
	Price *string `json:"price"`

	// StartDate and EndDate bound the exhibition period, inclusive
	StartDate Date `json:"start_date"`
	EndDate   Date `json:"end_date"`

	// AnnounceURL links to the original announcement post
	AnnounceURL string `json:"announce_url"`

	// Notes is optional free-form markdown (nullable)
	Notes *string `json:"notes"`

	// Status is the moderation status
	Status Status `json:"status"`

	// CreatedAt and UpdatedAt are Unix timestamps
	CreatedAt int64 `json:"created_at"`
	UpdatedAt int64 `json:"updated_at"`
}
