package models

// Asset is one stored image. Rows are created once by the upload pipeline and
// never updated afterwards; the bucket key is generated server side and never
// reused for another asset.
type Asset struct {
	AssetID        uint   `gorm:"column:assetid;primaryKey;autoIncrement" json:"assetid"`
	AssetName      string `gorm:"column:assetname;not null" json:"assetname"`
	BucketKey      string `gorm:"column:bucketkey;uniqueIndex:idx_bucketkey;not null" json:"bucketkey"`
	OriginalWidth  int    `gorm:"column:original_width" json:"original_width"`
	OriginalHeight int    `gorm:"column:original_height" json:"original_height"`
	ResizedWidth   int    `gorm:"column:resized_width" json:"resized_width"`
	ResizedHeight  int    `gorm:"column:resized_height" json:"resized_height"`
	IsResized      bool   `gorm:"column:is_resized;default:false;not null" json:"is_resized"`
}

func (Asset) TableName() string {
	return "image_assets"
}
