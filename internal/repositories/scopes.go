package repositories

import "gorm.io/gorm"

func paginate(page, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		offset := (page - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}

// deleteByID removes one row and reports gorm.ErrRecordNotFound when
// nothing matched. Dependent rows go with it through ON DELETE CASCADE.
func deleteByID(db *gorm.DB, model any, id any) error {
	res := db.Delete(model, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
