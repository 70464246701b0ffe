package validation

// Messages shown next to each field. They are part of the form's contract.
const (
	MsgNameRequired        = "O nome é obrigatório"
	MsgEmailRequired       = "O email é obrigatório"
	MsgEmailInvalid        = "Formato de email inválido"
	MsgEmailDomain         = "O Email precisa ser da sua conta do Google"
	MsgPasswordTooShort    = "A senha precisa ser no mínimo 6 caracteres"
	MsgTechTitleRequired   = "O nome da tecnologia é obrigatoria"
	MsgExperienceInvalid   = "A experiência precisa ser um número"
	MsgExperienceTooLow    = "No mínimo deve ter 1 ano de experiencia"
	MsgExperienceTooHigh   = "No máximo deve ter 15 anos de experiencia"
	MsgTechsTooFew         = "Insira pelo menos duas tecnologias"
	MsgTechsDuplicateTitle = "Voce inseriu duas ou mais tecnologias com o mesmo nome, altere!"
	MsgTechsAllBeginner    = "Voce está aprendendo"
)

// Limits applied by the registration schema.
const (
	MinPasswordLength  = 6
	MinExperience      = 1
	MaxExperience      = 15
	MinTechs           = 2
	AllowedEmailDomain = "@gmail.com"
)
