package sqlx

import "github.com/Nynra/pyserver-tools/pkg/logx"

// Commit finishes a transaction: it rolls back when the surrounding
// operation failed and commits otherwise. Meant to be called in a defer with
// the operation's named error return.
func Commit(logger logx.Logger, tx *Tx, err error) error {
	if err != nil {
		rollbackErr := tx.Rollback()
		if rollbackErr != nil {
			logger.Error(failedToRollback, rollbackErr)
		}
		return err
	}

	err = tx.Commit()
	if err != nil {
		logger.Error(failedToCommit, err)
		return err
	}

	logger.Debug(committed)
	return nil
}
