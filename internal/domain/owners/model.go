package owners

// Owner es inmutable una vez creado; los caballos lo referencian por ID.
type Owner struct {
	ID        int64
	FirstName string
	LastName  string
	Email     *string // nil = sin email
}

// SearchFilter busca por substring case-insensitive sobre "first last".
type SearchFilter struct {
	Name      string
	MaxAmount *int
}

// CreateInput es el candidato a nuevo dueño, antes de validar.
type CreateInput struct {
	FirstName string
	LastName  string
	Email     *string
}
