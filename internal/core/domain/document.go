package domain

// DocumentKind selects the logical storage bucket a file row lives under.
// Object keys are namespaced by organization id: <bucket>/<org_id>/<file_id>_<name>.
type DocumentKind string

const (
	KindDocument DocumentKind = "documents"
	KindDrawing  DocumentKind = "drawings"
	KindReceipt  DocumentKind = "receipts"
	KindProposal DocumentKind = "proposals"
)

// Document is a metadata row pointing at an object in blob storage. Drawings and
// project proposals share the shape and differ only in Kind.
type Document struct {
	DocumentID     string       `json:"documentID" db:"document_id"`
	OrganizationID string       `json:"organizationID" db:"organization_id"`
	ProjectID      *string      `json:"projectID" db:"project_id"`
	Kind           DocumentKind `json:"kind" db:"kind"`
	FileName       string       `json:"fileName" db:"file_name"`
	FileKey        string       `json:"fileKey" db:"file_key"`
	FileSize       int64        `json:"fileSize" db:"file_size"`
	FileType       string       `json:"fileType" db:"file_type"`
	UploadedBy     string       `json:"uploadedBy" db:"uploaded_by"`
	AuditFields
}
