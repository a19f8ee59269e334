package model

// UserType distinguishes the two account tables sharing the login endpoint.
type UserType string

const (
	ArtisanUser UserType = "artisan"
	ClientUser  UserType = "client"
)

// swagger:model TradeCategory
type TradeCategory struct {
	BaseModel
	Name string `gorm:"size:100;unique;not null" json:"name"`
}

func (TradeCategory) TableName() string {
	return "trade_categories"
}

// Artisan is a service provider. Passwords are stored bcrypt-hashed.
// swagger:model Artisan
type Artisan struct {
	BaseModel
	FirstName       string         `gorm:"size:100;not null" json:"firstName"`
	LastName        string         `gorm:"size:100;not null" json:"lastName"`
	PhoneNumber     string         `gorm:"size:20;unique;not null" json:"phoneNumber"`
	Email           string         `gorm:"size:100;unique;not null" json:"email"`
	Password        string         `gorm:"size:255;not null" json:"-"`
	TradeCategoryID *uint          `gorm:"index" json:"tradeCategoryId"`
	TradeCategory   *TradeCategory `gorm:"constraint:OnDelete:SET NULL" json:"tradeCategory,omitempty"`
	Location        string         `gorm:"size:100" json:"location"`
	Language        string         `gorm:"size:50" json:"language"`
	Bio             string         `gorm:"type:text" json:"bio"`
	BusinessName    string         `gorm:"size:150" json:"businessName"`
	ProfilePicture  string         `gorm:"size:255" json:"profilePicture"`
}

func (Artisan) TableName() string {
	return "artisans"
}

// Client hires artisans through job postings.
// swagger:model Client
type Client struct {
	BaseModel
	FirstName      string `gorm:"size:100;not null" json:"firstName"`
	LastName       string `gorm:"size:100;not null" json:"lastName"`
	PhoneNumber    string `gorm:"size:20;unique;not null" json:"phoneNumber"`
	Email          string `gorm:"size:100;unique;not null" json:"email"`
	Password       string `gorm:"size:255;not null" json:"-"`
	Location       string `gorm:"size:100" json:"location"`
	Language       string `gorm:"size:50" json:"language"`
	Bio            string `gorm:"type:text" json:"bio"`
	BusinessName   string `gorm:"size:150" json:"businessName"`
	ProfilePicture string `gorm:"size:255" json:"profilePicture"`
}

func (Client) TableName() string {
	return "clients"
}
