package handler

import (
	"io"
	"mime/multipart"
	"time"

	"github.com/gin-gonic/gin"

	vendordomain "github.com/greenhub/backend/internal/domain/vendor"
	"github.com/greenhub/backend/internal/interfaces/http/dto"
	"github.com/greenhub/backend/internal/interfaces/http/middleware"

	vendorapp "github.com/greenhub/backend/internal/application/vendor"
)

// Document form field names required on every application
var requiredDocuments = []string{
	vendordomain.DocumentCompanyReg,
	vendordomain.DocumentPANCard,
	vendordomain.DocumentBankProof,
	vendordomain.DocumentFSSAICert,
}

// Optional document form field names
var optionalDocuments = []string{
	vendordomain.DocumentManufacturingLicense,
	vendordomain.DocumentNPOPCert,
}

// VendorHandler handles vendor registration and lifecycle API endpoints
type VendorHandler struct {
	BaseHandler
	registration *vendorapp.RegistrationService
	lifecycle    *vendorapp.LifecycleService
}

// NewVendorHandler creates a new VendorHandler
func NewVendorHandler(registration *vendorapp.RegistrationService, lifecycle *vendorapp.LifecycleService) *VendorHandler {
	return &VendorHandler{
		registration: registration,
		lifecycle:    lifecycle,
	}
}

// RegisterVendorForm is the multipart form submitted by an applicant
type RegisterVendorForm struct {
	BusinessName      string `form:"business_name" binding:"required,min=1,max=200"`
	ContactEmail      string `form:"contact_email" binding:"required,email,max=200"`
	PhoneNumber       string `form:"phone_number" binding:"required,max=50"`
	AddressLine       string `form:"address_line" binding:"required,max=500"`
	City              string `form:"city" binding:"required,max=100"`
	State             string `form:"state" binding:"required,max=100"`
	Pincode           string `form:"pincode" binding:"required,max=20"`
	YearEstablishment string `form:"year_establishment" binding:"max=50"`
	SellerCategory    string `form:"seller_category" binding:"required,oneof=NPOP_ORGANIC NATURAL ECO_FRIENDLY"`
	NPOPNumber        string `form:"npop_number" binding:"max=100"`
	NPOPValidity      string `form:"npop_validity"`
	NPOPScope         string `form:"npop_scope" binding:"max=200"`
	FSSAINumber       string `form:"fssai_number" binding:"max=100"`
	FSSAIValidity     string `form:"fssai_validity"`
	FSSAIType         string `form:"fssai_type" binding:"max=100"`
}

// Register handles the public vendor application endpoint. The form
// carries the company profile plus one file per document kind.
func (h *VendorHandler) Register(c *gin.Context) {
	var form RegisterVendorForm
	if err := c.ShouldBind(&form); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := vendorapp.RegisterVendorRequest{
		BusinessName:      form.BusinessName,
		ContactEmail:      form.ContactEmail,
		PhoneNumber:       form.PhoneNumber,
		AddressLine:       form.AddressLine,
		City:              form.City,
		State:             form.State,
		Pincode:           form.Pincode,
		YearEstablishment: form.YearEstablishment,
		SellerCategory:    form.SellerCategory,
		NPOPNumber:        form.NPOPNumber,
		NPOPScope:         form.NPOPScope,
		FSSAINumber:       form.FSSAINumber,
		FSSAIType:         form.FSSAIType,
	}

	var err error
	if appReq.NPOPValidity, err = parseFormDate(form.NPOPValidity); err != nil {
		h.BadRequest(c, "npop_validity must be formatted YYYY-MM-DD")
		return
	}
	if appReq.FSSAIValidity, err = parseFormDate(form.FSSAIValidity); err != nil {
		h.BadRequest(c, "fssai_validity must be formatted YYYY-MM-DD")
		return
	}

	var docs []vendorapp.DocumentUpload
	for _, kind := range requiredDocuments {
		doc, err := readDocument(c, kind)
		if err != nil {
			h.BadRequest(c, "required document missing or unreadable: "+kind)
			return
		}
		docs = append(docs, *doc)
	}
	for _, kind := range optionalDocuments {
		doc, err := readDocument(c, kind)
		if err != nil {
			continue
		}
		docs = append(docs, *doc)
	}

	resp, err := h.registration.Register(c.Request.Context(), appReq, docs)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, resp)
}

// ListApproved is the public storefront vendor directory
func (h *VendorHandler) ListApproved(c *gin.Context) {
	vendors, err := h.lifecycle.ListApproved(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, vendors)
}

// Me returns the vendor profile linked to the calling account
func (h *VendorHandler) Me(c *gin.Context) {
	resp, err := h.lifecycle.GetByEmail(c.Request.Context(), middleware.GetJWTEmail(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// UpdateMyContact changes the calling vendor's contact phone
func (h *VendorHandler) UpdateMyContact(c *gin.Context) {
	current, err := h.lifecycle.GetByEmail(c.Request.Context(), middleware.GetJWTEmail(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}

	var req vendorapp.UpdateContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.lifecycle.UpdateContact(c.Request.Context(), current.ID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List returns vendors for the admin dashboard, optionally filtered by
// lifecycle status
func (h *VendorHandler) List(c *gin.Context) {
	var listReq dto.ListRequest
	if err := c.ShouldBindQuery(&listReq); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	status := c.Query("status")
	result, err := h.lifecycle.List(c.Request.Context(), status, listReq.ToFilter())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.SuccessWithMeta(c, result.Items, result.Total, result.Page, result.PageSize)
}

// Counts returns the vendor population per lifecycle state
func (h *VendorHandler) Counts(c *gin.Context) {
	counts, err := h.lifecycle.Counts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, counts)
}

// GetByID returns one vendor
func (h *VendorHandler) GetByID(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	resp, err := h.lifecycle.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Approve transitions a pending vendor to APPROVED. The response carries
// the provisioned temporary credentials exactly once; a repeated approve
// reports already_approved without them.
func (h *VendorHandler) Approve(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	result, err := h.lifecycle.Approve(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// Reject transitions a pending vendor to REJECTED
func (h *VendorHandler) Reject(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	resp, err := h.lifecycle.Reject(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Suspend removes a vendor from the storefront
func (h *VendorHandler) Suspend(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	resp, err := h.lifecycle.Suspend(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Reactivate restores a suspended vendor to APPROVED
func (h *VendorHandler) Reactivate(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	resp, err := h.lifecycle.Reactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a vendor and cascades its notifications
func (h *VendorHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.lifecycle.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// parseFormDate parses an optional YYYY-MM-DD form value
func parseFormDate(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// readDocument pulls one uploaded file out of the multipart form
func readDocument(c *gin.Context, kind string) (*vendorapp.DocumentUpload, error) {
	fileHeader, err := c.FormFile(kind)
	if err != nil {
		return nil, err
	}

	data, err := readAll(fileHeader)
	if err != nil {
		return nil, err
	}

	return &vendorapp.DocumentUpload{
		Kind:        kind,
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func readAll(fileHeader *multipart.FileHeader) ([]byte, error) {
	f, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
