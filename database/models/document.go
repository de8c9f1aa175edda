package models

// Document is one assembled PDF. Immutable once created.
type Document struct {
	PDFID     uint   `gorm:"column:pdfId;primaryKey;autoIncrement" json:"pdfId"`
	PDFName   string `gorm:"column:pdfName;not null" json:"pdfName"`
	PDFKey    string `gorm:"column:pdfKey;uniqueIndex:idx_pdfkey;not null" json:"pdfKey"`
	PageCount int    `gorm:"column:pageCount;not null" json:"pageCount"`
}

func (Document) TableName() string {
	return "pdf_assets"
}
