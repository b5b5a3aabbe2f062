package schema

import (
	"errors"
	"regexp"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

var (
	reNationalID    = regexp.MustCompile(`^[0-9]{7,8}$`)
	reBankAccountID = regexp.MustCompile(`^[0-9]{22}$`)

	errNationalID    = errors.New("invalid national id")
	errBankAccountID = errors.New("invalid bank account id")
)

type PayrollEntry struct{ ent.Schema }

func (PayrollEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "payroll_entries"},
	}
}

func (PayrollEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("batch_id", uuid.UUID{}),
		field.String("last_name").NotEmpty(),
		field.String("first_name").NotEmpty(),
		field.String("national_id").Optional().Nillable().
			Validate(func(s string) error {
				if s == "" || reNationalID.MatchString(s) {
					return nil
				}
				return errNationalID
			}),
		field.String("bank_account_id").Optional().Nillable().
			Validate(func(s string) error {
				if s == "" || reBankAccountID.MatchString(s) {
					return nil
				}
				return errBankAccountID
			}),
		field.Float("amount").
			Min(0).
			SchemaType(map[string]string{dialect.Postgres: "numeric(14,2)"}),
	}
}

func (PayrollEntry) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("batch", PayrollBatch.Type).
			Ref("entries").
			Field("batch_id").
			Required().
			Unique(),
	}
}

func (PayrollEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
		index.Fields("last_name", "first_name"),
	}
}
