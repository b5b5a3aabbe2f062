package constants

// DocumentType is the closed set of document kinds the pipeline understands.
type DocumentType string

// Stable values (store these exact strings in DB).
const (
	DocTypePayroll  DocumentType = "PAYROLL"  // payroll disbursement listing (SIDEPP)
	DocTypeTransfer DocumentType = "TRANSFER" // bank-transfer receipt
	DocTypeUnknown  DocumentType = "UNKNOWN"  // classifier could not decide
)

// DocumentTypes holds the persistable document types. UNKNOWN is included
// because failed documents are recorded with whatever the classifier said.
var DocumentTypes = []string{string(DocTypePayroll), string(DocTypeTransfer), string(DocTypeUnknown)}
