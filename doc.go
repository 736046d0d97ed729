/*
	Project: SchoolHub - administration client for the school REST backend
	Target: office staff managing exams, fees, results and user accounts

	Layout:
	- core/resource: remote collections, list state, search & filters, draft forms, CRUD controller
	- core/{exam,fee,result,user}: editable screens
	- core/dashboard: read-only boards (students, teachers, classes, attendance, grades, home)
	- apps/admin: command line front end
*/
package schoolhub
