package signupform_test

import (
	"fmt"

	signupform "github.com/goliatone/go-signupform"
	"github.com/goliatone/go-signupform/pkg/model"
)

func ExampleApp_Submit() {
	app, err := signupform.New(signupform.WithInitialValues(model.RawValues{
		Name:     "ana maria",
		Email:    "Ana@Gmail.com",
		Password: "segredo",
		Techs: []model.RawTech{
			{Title: "Go", Experience: "2"},
			{Title: "Postgres", Experience: "4"},
		},
	}))
	if err != nil {
		fmt.Println(err)
		return
	}
	if app.Submit() {
		fmt.Println(app.Output())
	}
	// Output:
	// {
	//   "name": "Ana Maria",
	//   "email": "ana@gmail.com",
	//   "password": "segredo",
	//   "techs": [
	//     {
	//       "title": "Go",
	//       "experience": 2
	//     },
	//     {
	//       "title": "Postgres",
	//       "experience": 4
	//     }
	//   ]
	// }
}

func ExampleApp_Dispatch() {
	app, err := signupform.New()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(app.Dispatch("remove:0"))
	_ = app.Dispatch("add")
	fmt.Println(len(app.Controller().Rows()))
	// Output:
	// signupform: form: at least one tech row must remain
	// 2
}
