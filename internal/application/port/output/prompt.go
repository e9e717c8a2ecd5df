package output

type PromptFormatter interface {
	Format(question, scratchpad string) (string, error)
}
