package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/arifrizal16/sahasrara/domain"
)

// TransactionHandlers handles treatment record HTTP requests
type TransactionHandlers struct {
	txSvc domain.TransactionService
}

// NewTransactionHandlers creates new transaction handlers
func NewTransactionHandlers(txSvc domain.TransactionService) *TransactionHandlers {
	return &TransactionHandlers{txSvc: txSvc}
}

// TransactionRequest mirrors the intake form field names. Biaya is untyped
// because clients send it either as a string or a number.
type TransactionRequest struct {
	ID           string `json:"id"`
	Nama         string `json:"nama"`
	Umur         string `json:"umur"`
	JenisKelamin string `json:"jenisKelamin"`
	BeratBadan   string `json:"beratBadan"`
	PanjangBadan string `json:"panjangBadan"`
	NamaOrtu     string `json:"namaOrtu"`
	Alamat       string `json:"alamat"`
	Tindakan     string `json:"tindakan"`
	Biaya        any    `json:"biaya"`
	Keterangan   string `json:"keterangan"`
	Tanggal      string `json:"tanggal"`
}

func (r *TransactionRequest) toInput() *domain.TransactionInput {
	return &domain.TransactionInput{
		BabyName:     r.Nama,
		Age:          r.Umur,
		SexCode:      r.JenisKelamin,
		WeightKg:     r.BeratBadan,
		LengthCm:     r.PanjangBadan,
		GuardianName: r.NamaOrtu,
		Address:      r.Alamat,
		Treatment:    r.Tindakan,
		Cost:         r.Biaya,
		Note:         r.Keterangan,
		Date:         r.Tanggal,
	}
}

// transactionJSON renders a stored record. Create and update echo the stored
// sex value; the listing maps it back to the external L/P code.
func transactionJSON(tx *domain.Transaction, externalSex bool) gin.H {
	sex := string(tx.Sex)
	if externalSex {
		sex = tx.Sex.Code()
	}
	return gin.H{
		"id":           tx.ID,
		"namaBayi":     tx.BabyName,
		"umur":         tx.Age,
		"jenisKelamin": sex,
		"beratBadan":   tx.WeightKg,
		"panjangBadan": tx.LengthCm,
		"namaOrtu":     tx.GuardianName,
		"alamat":       tx.Address,
		"tindakan":     string(tx.Treatment),
		"biaya":        tx.Cost,
		"keterangan":   tx.Note,
		"createdAt":    tx.CreatedAt,
		"updatedAt":    tx.UpdatedAt,
	}
}

func writeTransactionError(c *gin.Context, err error) {
	switch err {
	case domain.ErrMissingFields:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Semua field wajib harus diisi"})
	case domain.ErrInvalidCost:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Biaya harus berupa angka yang valid"})
	case domain.ErrInvalidTreatment:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Tindakan tidak valid"})
	case domain.ErrInvalidDate:
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Tanggal tidak valid"})
	case domain.ErrTransactionNotFound:
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Transaksi tidak ditemukan"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
	}
}

// Create handles POST /api/transactions
func (h *TransactionHandlers) Create(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Semua field wajib harus diisi"})
		return
	}

	tx, err := h.txSvc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeTransactionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    transactionJSON(tx, false),
		"message": "Transaksi berhasil disimpan",
	})
}

// Update handles PUT /api/transactions
func (h *TransactionHandlers) Update(c *gin.Context) {
	var req TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Semua field wajib harus diisi"})
		return
	}

	if req.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID transaksi diperlukan"})
		return
	}

	tx, err := h.txSvc.Update(c.Request.Context(), req.ID, req.toInput())
	if err != nil {
		writeTransactionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    transactionJSON(tx, false),
		"message": "Transaksi berhasil diperbarui",
	})
}

// Delete handles DELETE /api/transactions?id=
func (h *TransactionHandlers) Delete(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID transaksi diperlukan"})
		return
	}

	if err := h.txSvc.Delete(c.Request.Context(), id); err != nil {
		writeTransactionError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Transaksi berhasil dihapus",
	})
}

// List handles GET /api/transactions
func (h *TransactionHandlers) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		limit = 50
	}

	filter := domain.TransactionFilter{
		Page:      page,
		Limit:     limit,
		Search:    c.Query("search"),
		Treatment: c.Query("tindakan"),
	}

	result, err := h.txSvc.List(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Internal server error"})
		return
	}

	data := make([]gin.H, 0, len(result.Items))
	for _, tx := range result.Items {
		data = append(data, transactionJSON(tx, true))
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data":    data,
		"pagination": gin.H{
			"page":       result.Page,
			"limit":      result.Limit,
			"total":      result.Total,
			"totalPages": result.TotalPages,
		},
	})
}
