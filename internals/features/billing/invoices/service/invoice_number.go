// file: internals/features/billing/invoices/service/invoice_number.go
package service

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	invoiceModel "propertiku_backend/internals/features/billing/invoices/model"
)

// nextInvoiceNumber mengambil nomor invoice berikutnya untuk bulan issue.
// Counter disimpan di tabel invoice_sequences dan di-increment di dalam
// transaksi generate dengan row lock, bukan counter in-memory, supaya tetap
// benar saat concurrent generation. Format: INV-YYYYMM-000001.
func nextInvoiceNumber(tx *gorm.DB, issueDate time.Time) (string, error) {
	ym := issueDate.Format("200601")

	q := tx.Model(&invoiceModel.InvoiceSequence{})
	// sqlite (dipakai di test) tidak mengenal SELECT ... FOR UPDATE;
	// write lock database-nya sudah menserialkan increment.
	if tx.Dialector.Name() == "postgres" {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}

	var seq invoiceModel.InvoiceSequence
	err := q.Where("invoice_sequence_year_month = ?", ym).Take(&seq).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		seq = invoiceModel.InvoiceSequence{
			InvoiceSequenceYearMonth: ym,
			InvoiceSequenceLastValue: 1,
		}
		if err := tx.Create(&seq).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				// kalah race bikin row pertama → baca ulang lalu increment
				return nextInvoiceNumber(tx, issueDate)
			}
			return "", err
		}
	case err != nil:
		return "", err
	default:
		seq.InvoiceSequenceLastValue++
		if err := tx.Model(&invoiceModel.InvoiceSequence{}).
			Where("invoice_sequence_year_month = ?", ym).
			Update("invoice_sequence_last_value", seq.InvoiceSequenceLastValue).Error; err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("INV-%s-%06d", ym, seq.InvoiceSequenceLastValue), nil
}
