package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/pkg/errors"
	"github.com/vfg2006/salesflow-api/infrastructure/database/postgres"
	"github.com/vfg2006/salesflow-api/internal/domain"
)

const (
	usersTable = "users"
)

// Código SQLSTATE de violação de unicidade
const uniqueViolation = pq.ErrorCode("23505")

var userColumns = []string{"id", "username", "password"}

// ErrDuplicateUsername indica que o banco rejeitou o username pela constraint de unicidade
var ErrDuplicateUsername = errors.New("username já cadastrado")

// userRepository persiste usuários no PostgreSQL. As demais coleções
// continuam servidas pelo MemStorage.
type userRepository struct {
	conn postgres.Queryer
}

func NewUserRepository(conn postgres.Queryer) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	query, args, err := selectUserQuery(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.scanUser(r.conn.QueryRowContext(ctx, query, args...))
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	query, args, err := selectUserQuery(squirrel.Eq{"username": username}).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query")
	}

	return r.scanUser(r.conn.QueryRowContext(ctx, query, args...))
}

func (r *userRepository) CreateUser(ctx context.Context, input domain.InsertUser) (*domain.User, error) {
	user := &domain.User{
		ID:       uuid.NewString(),
		Username: input.Username,
		Password: input.Password,
	}

	query, args, err := insertUserQuery(user).ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir query de inserção")
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&user.ID); err != nil {
		if isUniqueViolation(err) {
			return nil, errors.Wrap(ErrDuplicateUsername, input.Username)
		}
		return nil, errors.Wrapf(err, "erro ao inserir usuário %s", input.Username)
	}

	return user, nil
}

func (r *userRepository) scanUser(row *sql.Row) (*domain.User, error) {
	user := &domain.User{}
	err := row.Scan(&user.ID, &user.Username, &user.Password)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao escanear usuário")
	}
	return user, nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}

// selectUserQuery ordena pela data de criação para que a busca por username
// devolva sempre o primeiro cadastro
func selectUserQuery(where squirrel.Eq) squirrel.SelectBuilder {
	return squirrel.
		Select(userColumns...).
		From(usersTable).
		Where(where).
		OrderBy("created_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)
}

func insertUserQuery(user *domain.User) squirrel.InsertBuilder {
	return squirrel.
		Insert(usersTable).
		Columns(userColumns...).
		Values(user.ID, user.Username, user.Password).
		Suffix("RETURNING id").
		PlaceholderFormat(squirrel.Dollar)
}
