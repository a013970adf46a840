package roster

import "github.com/campusbook/campusbook/internal/domain/person"

// SamplePersons returns the roster used when no data file exists yet.
func SamplePersons() []person.Person {
	return []person.Person{
		person.New("Alex Yeoh", "A8743880E", "e1234567@u.nus.edu",
			"Business Analytics", "group 1", "1", ""),
		person.New("Bernice Yu", "A9272757L", "e9999999@u.nus.edu",
			"Computer Science", "group 1", "1", ""),
		person.New("Charlotte Oliveiro", "A9321028P", "e3456819@u.nus.edu",
			"Political Science", "group 2", "1", ""),
		person.New("David Li", "A9103128E", "e0000001@u.nus.edu",
			"Business Administration", "group 2", "1", ""),
		person.New("Irfan Ibrahim", "A2492021T", "e3456718@u.nus.edu",
			"Chemistry", "group 3", "1", ""),
		person.New("Roy Balakrishnan", "A9262441K", "e5739264@u.nus.edu",
			"Mechanical Engineering", "group 3", "1", ""),
	}
}
