package dto

import "github.com/dwlab/visitor-pass-service/internal/models"

// Field naming follows the browser collaborator's wire contract: snake_case
// for allow-list fields, camelCase for the issuance dates it mirrors to the
// upstream sandbox.

type IssueCredentialRequest struct {
	Name       string `json:"name"`
	BirthDate  string `json:"birth_date"`
	IDNumber   string `json:"id_number"`
	PassStatus string `json:"pass_status"`
	PassID     string `json:"pass_id"`
	IssueDate  string `json:"issueDate"`
	ExpiryDate string `json:"expiryDate"`
}

type IssueCredentialResponse struct {
	Success       bool   `json:"success"`
	QRCode        string `json:"qrCode,omitempty"`
	QRCodeURL     string `json:"qrCodeUrl,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	Message       string `json:"message"`
}

type AddPassRequest struct {
	ID         string `json:"id,omitempty"`
	PassID     string `json:"pass_id"`
	Name       string `json:"name"`
	PassStatus string `json:"pass_status"`
	IssueTime  string `json:"issue_time,omitempty"`
	ExpiryDate string `json:"expiry_date,omitempty"`
}

type PassResponse struct {
	Success bool               `json:"success"`
	Data    *models.PassRecord `json:"data,omitempty"`
	Message string             `json:"message,omitempty"`
}

type PassListResponse struct {
	Success bool                `json:"success"`
	Data    []models.PassRecord `json:"data"`
}

type SyncPassesRequest struct {
	Records []models.PassRecord `json:"records"`
}

type VerifyPassRequest struct {
	PassID     string `json:"pass_id"`
	Name       string `json:"name"`
	PassStatus string `json:"pass_status"`
}

type GenerateVerificationQRResponse struct {
	Success       bool   `json:"success"`
	QRCode        string `json:"qrCode,omitempty"`
	QRCodeURL     string `json:"qrCodeUrl,omitempty"`
	TransactionID string `json:"transactionId,omitempty"`
	Ref           string `json:"ref,omitempty"`
	Message       string `json:"message"`
}

type VerificationResultResponse struct {
	Success bool          `json:"success"`
	Status  string        `json:"status,omitempty"`
	Data    models.Claims `json:"data,omitempty"`
	Message string        `json:"message,omitempty"`
}
