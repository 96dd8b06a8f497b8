package schema

// GarmentAttribute represents the garment_attributes table - one row per
// metadata trait of a garment. Rows are replaced wholesale when metadata
// is re-fetched and cascade deleted when the garment is burned.
type GarmentAttribute struct {
	// ID is the "tokenID-index" composite identifier, the primary key
	ID string `gorm:"column:id;primaryKey;type:text"`
	// TokenID references the owning garment
	TokenID string `gorm:"column:token_id;not null;type:text;index"`
	// TraitType is the attribute's trait type label
	TraitType string `gorm:"column:trait_type;type:text"`
	// Value is the attribute's value rendered as text
	Value string `gorm:"column:value;type:text"`
}

// TableName specifies the table name for the GarmentAttribute model
func (GarmentAttribute) TableName() string {
	return "garment_attributes"
}
