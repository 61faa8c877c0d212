package dto

import (
	"github.com/dwlab/visitor-pass-service/internal/models"
	issvc "github.com/dwlab/visitor-pass-service/internal/service"
)

// ToCommand converts IssueCredentialRequest into the use-case input
func (r IssueCredentialRequest) ToCommand() issvc.CredentialRequest {
	return issvc.CredentialRequest{
		Name:       r.Name,
		BirthDate:  r.BirthDate,
		IDNumber:   r.IDNumber,
		PassStatus: r.PassStatus,
		PassID:     r.PassID,
		IssueDate:  r.IssueDate,
		ExpiryDate: r.ExpiryDate,
	}
}

func (r AddPassRequest) ToCommand() issvc.AddPassCommand {
	return issvc.AddPassCommand{
		ID:         r.ID,
		PassID:     r.PassID,
		Name:       r.Name,
		PassStatus: r.PassStatus,
		IssueTime:  r.IssueTime,
		ExpiryDate: r.ExpiryDate,
	}
}

func (r VerifyPassRequest) ToCommand() issvc.VerifyCommand {
	return issvc.VerifyCommand{PassID: r.PassID, Name: r.Name, PassStatus: r.PassStatus}
}

func FromIssueResult(res issvc.IssueResult) IssueCredentialResponse {
	return IssueCredentialResponse{
		Success:       true,
		QRCode:        res.QRCode,
		QRCodeURL:     res.QRCodeURL,
		TransactionID: res.TransactionID,
		Message:       "credential issued",
	}
}

func FromPass(rec models.PassRecord) PassResponse {
	return PassResponse{Success: true, Data: &rec}
}

func FromPassList(recs []models.PassRecord) PassListResponse {
	if recs == nil {
		recs = []models.PassRecord{}
	}
	return PassListResponse{Success: true, Data: recs}
}

func FromStartVerification(res issvc.StartVerificationResult) GenerateVerificationQRResponse {
	return GenerateVerificationQRResponse{
		Success:       true,
		QRCode:        res.QRCode,
		QRCodeURL:     res.QRCodeURL,
		TransactionID: res.TransactionID,
		Ref:           res.Ref,
		Message:       "verification QR generated",
	}
}

func FromPollResult(res issvc.PollResult) VerificationResultResponse {
	return VerificationResultResponse{
		Success: res.Status != issvc.StatusFailed,
		Status:  string(res.Status),
		Data:    res.Claims,
		Message: res.Message,
	}
}
