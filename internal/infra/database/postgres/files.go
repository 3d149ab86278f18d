package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/WylKeepStudy/KaoLaShare-backend/internal/domain"
)

func (r *PGRepo) FileByID(ctx context.Context, id domain.FileID) (domain.File, error) {
	q := r.qb().Select("id", "user_id", "department_id", "file_name", "storage_key",
		"file_type", "download_count", "created_at").
		From(fmt.Sprintf("%s.files", r.schema)).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("FileByID", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var f domain.File
	if err := row.Scan(&f.ID, &f.UserID, &f.DepartmentID, &f.FileName, &f.StorageKey,
		&f.FileType, &f.DownloadCount, &f.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("FileByID not found in %s id=%s", time.Since(start), id)
			return domain.File{}, fmt.Errorf("%w: file %s", domain.ErrNotFound, id)
		}
		r.logger.Printf("FileByID scan error after %s: %v", time.Since(start), err)
		return domain.File{}, err
	}
	r.logger.Printf("FileByID ok in %s id=%s name=%q", time.Since(start), f.ID, f.FileName)
	return f, nil
}

// IncrementDownloadCount — одиночный UPDATE с инкрементом на стороне БД,
// никакого read-modify-write: конкурентные скачивания не теряют апдейты.
func (r *PGRepo) IncrementDownloadCount(ctx context.Context, id domain.FileID) error {
	q := r.qb().Update(fmt.Sprintf("%s.files", r.schema)).
		Set("download_count", sq.Expr("download_count + 1")).
		Where(sq.Eq{"id": id})

	sqlStr, args, _ := q.ToSql()
	r.logSQL("IncrementDownloadCount", sqlStr, args)

	start := time.Now()
	tag, err := r.pool.Exec(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("IncrementDownloadCount exec error after %s: %v", time.Since(start), err)
		return err
	}
	if tag.RowsAffected() == 0 {
		r.logger.Printf("IncrementDownloadCount no rows in %s id=%s", time.Since(start), id)
		return fmt.Errorf("%w: file %s", domain.ErrNotFound, id)
	}
	r.logger.Printf("IncrementDownloadCount ok in %s id=%s", time.Since(start), id)
	return nil
}

func (r *PGRepo) InsertFile(ctx context.Context, f domain.File) (domain.File, error) {
	q := r.qb().Insert(fmt.Sprintf("%s.files", r.schema)).
		Columns("user_id", "department_id", "file_name", "storage_key", "file_type", "download_count").
		Values(f.UserID, f.DepartmentID, f.FileName, f.StorageKey, f.FileType, 0).
		Suffix("RETURNING id, user_id, department_id, file_name, storage_key, file_type, download_count, created_at")

	sqlStr, args, _ := q.ToSql()
	r.logSQL("InsertFile", sqlStr, args)

	start := time.Now()
	row := r.pool.QueryRow(ctx, sqlStr, args...)
	var out domain.File
	if err := row.Scan(&out.ID, &out.UserID, &out.DepartmentID, &out.FileName, &out.StorageKey,
		&out.FileType, &out.DownloadCount, &out.CreatedAt); err != nil {
		r.logger.Printf("InsertFile scan error after %s: %v", time.Since(start), err)
		return domain.File{}, err
	}
	r.logger.Printf("InsertFile ok in %s id=%s name=%q", time.Since(start), out.ID, out.FileName)
	return out, nil
}

// фильтры по department/keyword: пустое значение — без фильтрации
func (r *PGRepo) applyFileFilter(sb sq.SelectBuilder, f domain.FileFilter) sq.SelectBuilder {
	if f.DepartmentID != nil {
		sb = sb.Where(sq.Eq{"f.department_id": *f.DepartmentID})
	}
	if f.Keyword != "" {
		// регистрозависимый substring-match по имени файла
		sb = sb.Where(sq.Like{"f.file_name": "%" + f.Keyword + "%"})
	}
	return sb
}

func (r *PGRepo) FileList(ctx context.Context, offset, limit int, f domain.FileFilter) ([]domain.FileView, error) {
	files := fmt.Sprintf("%s.files f", r.schema)
	users := fmt.Sprintf("%s.users u", r.schema)

	sb := r.qb().Select("f.id", "f.file_name", "u.username", "f.file_type").
		From(files).
		Join(users + " ON u.id = f.user_id").
		OrderBy("f.created_at DESC").
		Offset(uint64(offset)).
		Limit(uint64(limit))
	sb = r.applyFileFilter(sb, f)

	sqlStr, args, _ := sb.ToSql()
	r.logSQL("FileList", sqlStr, args)

	start := time.Now()
	rows, err := r.pool.Query(ctx, sqlStr, args...)
	if err != nil {
		r.logger.Printf("FileList query error after %s: %v", time.Since(start), err)
		return nil, err
	}
	defer rows.Close()

	var res []domain.FileView
	for rows.Next() {
		var v domain.FileView
		if err := rows.Scan(&v.ID, &v.FileName, &v.ContributorName, &v.FileType); err != nil {
			r.logger.Printf("FileList scan error: %v", err)
			return nil, err
		}
		res = append(res, v)
	}
	if err := rows.Err(); err != nil {
		r.logger.Printf("FileList rows error: %v", err)
		return nil, err
	}
	r.logger.Printf("FileList ok in %s count=%d", time.Since(start), len(res))
	return res, nil
}

func (r *PGRepo) FileTotal(ctx context.Context, f domain.FileFilter) (int64, error) {
	sb := r.qb().Select("COUNT(*)").
		From(fmt.Sprintf("%s.files f", r.schema))
	sb = r.applyFileFilter(sb, f)

	sqlStr, args, _ := sb.ToSql()
	r.logSQL("FileTotal", sqlStr, args)

	start := time.Now()
	var total int64
	if err := r.pool.QueryRow(ctx, sqlStr, args...).Scan(&total); err != nil {
		r.logger.Printf("FileTotal scan error after %s: %v", time.Since(start), err)
		return 0, err
	}
	r.logger.Printf("FileTotal ok in %s total=%d", time.Since(start), total)
	return total, nil
}
