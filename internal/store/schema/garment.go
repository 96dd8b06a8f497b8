package schema

import (
	"time"

	"gorm.io/datatypes"
)

// Garment represents the garments table - one row per live garment NFT.
// Burned garments are deleted together with their attribute rows.
type Garment struct {
	// TokenID is the decimal token id, the primary key
	TokenID string `gorm:"column:token_id;primaryKey;type:text"`
	// Owner is the lowercase address of the current owner, nil when the
	// ownerOf view call soft-failed at mint time
	Owner *string `gorm:"column:owner;type:text;index"`
	// Designer is the garment designer name from metadata
	Designer string `gorm:"column:designer;type:text"`
	// TokenURI is the raw token URI reported by the contract
	TokenURI string `gorm:"column:token_uri;type:text"`
	// Name is the metadata name, empty when metadata was unavailable
	Name string `gorm:"column:name;type:text"`
	// Description is the metadata description
	Description string `gorm:"column:description;type:text"`
	// ImageURL is the metadata image URL
	ImageURL string `gorm:"column:image_url;type:text"`
	// AnimationURL is the metadata animation URL
	AnimationURL string `gorm:"column:animation_url;type:text"`
	// PrimarySalePrice is the sale price in wei as a decimal string
	PrimarySalePrice string `gorm:"column:primary_sale_price;not null;default:'0';type:numeric(78,0)"`
	// RawMetadata holds the fetched metadata document as-is
	RawMetadata datatypes.JSON `gorm:"column:raw_metadata"`
	// MetadataHash is the canonical (JCS) sha256 of RawMetadata, used for
	// change detection
	MetadataHash string `gorm:"column:metadata_hash;type:text"`
	// CreatedAt is the timestamp when this record was first indexed
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
	// UpdatedAt is the timestamp when this record was last updated
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`

	// Associations
	Attributes []GarmentAttribute `gorm:"foreignKey:TokenID;references:TokenID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for the Garment model
func (Garment) TableName() string {
	return "garments"
}
