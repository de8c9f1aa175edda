package models

// TextExtraction links an asset to its latest OCR output blob. One row per
// asset; a new extraction overwrites the previous key.
type TextExtraction struct {
	AssetID uint   `gorm:"column:assetid;primaryKey" json:"assetid"`
	S3Key   string `gorm:"column:s3Key;not null" json:"s3Key"`
}

func (TextExtraction) TableName() string {
	return "textract_jobs"
}
