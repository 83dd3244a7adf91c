package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/yigit/learnsphere/internal/app/models"
	"github.com/yigit/learnsphere/internal/app/services"
)

// Console runs the interactive menu loop over the catalog services. Input and
// output are injected so the loop can be driven from tests.
type Console struct {
	in          *bufio.Scanner
	out         io.Writer
	categories  services.CategoryService
	courses     services.CourseService
	users       services.UserService
	enrollments services.EnrollmentService
	reviews     services.ReviewService
}

// Services bundles the catalog services the console drives
type Services struct {
	Categories  services.CategoryService
	Courses     services.CourseService
	Users       services.UserService
	Enrollments services.EnrollmentService
	Reviews     services.ReviewService
}

// New creates a console bound to the given input, output and services
func New(in io.Reader, out io.Writer, svcs Services) *Console {
	return &Console{
		in:          bufio.NewScanner(in),
		out:         out,
		categories:  svcs.Categories,
		courses:     svcs.Courses,
		users:       svcs.Users,
		enrollments: svcs.Enrollments,
		reviews:     svcs.Reviews,
	}
}

// Run executes the menu loop until the user exits or input ends. Command
// errors are printed and the loop continues.
func (c *Console) Run(ctx context.Context) error {
	fmt.Fprintln(c.out, "=== LearnSphere Console ===")

	for {
		c.printMenu()
		choice, ok := c.readLine()
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = c.addCategory(ctx)
		case "2":
			err = c.addCourse(ctx)
		case "3":
			err = c.registerUser(ctx)
		case "4":
			err = c.enrollUser(ctx)
		case "5":
			err = c.listUserCourses(ctx)
		case "6":
			err = c.searchCourses(ctx)
		case "7":
			err = c.addReview(ctx)
		case "8":
			err = c.avgRating(ctx)
		case "9":
			err = c.adminList(ctx)
		case "0":
			fmt.Fprintln(c.out, "Bye!")
			return nil
		default:
			fmt.Fprintln(c.out, "Invalid option.")
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			fmt.Fprintf(c.out, "Error: %v\n", err)
		}
		fmt.Fprintln(c.out)
	}
}

func (c *Console) printMenu() {
	fmt.Fprintln(c.out)
	fmt.Fprintln(c.out, "Choose an option:")
	fmt.Fprintln(c.out, "1) Add Category")
	fmt.Fprintln(c.out, "2) Add Course")
	fmt.Fprintln(c.out, "3) Register User")
	fmt.Fprintln(c.out, "4) Enroll User in Course")
	fmt.Fprintln(c.out, "5) List Courses by User")
	fmt.Fprintln(c.out, "6) Search Courses (name/category) + show avg rating")
	fmt.Fprintln(c.out, "7) Add/Update Review (0..10)")
	fmt.Fprintln(c.out, "8) Show Average Rating for Course")
	fmt.Fprintln(c.out, "9) Admin: Users with Enrollments")
	fmt.Fprintln(c.out, "0) Exit")
	fmt.Fprint(c.out, "> ")
}

// readLine reads one trimmed input line; ok is false once input is exhausted
func (c *Console) readLine() (string, bool) {
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// prompt prints a label and reads the reply
func (c *Console) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	return c.readLine()
}

// promptInt prompts for an integer
func (c *Console) promptInt(label string) (int, error) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, io.EOF
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", raw)
	}
	return value, nil
}

// promptID prompts for a 64-bit identifier
func (c *Console) promptID(label string) (int64, error) {
	raw, ok := c.prompt(label)
	if !ok {
		return 0, io.EOF
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("expected a number, got %q", raw)
	}
	return value, nil
}

func (c *Console) addCategory(ctx context.Context) error {
	name, ok := c.prompt("Category name: ")
	if !ok {
		return io.EOF
	}

	category, err := c.categories.CreateCategory(ctx, name)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Created: category %d (%s)\n", category.ID, category.Name)
	return nil
}

func (c *Console) addCourse(ctx context.Context) error {
	name, ok := c.prompt("Course name: ")
	if !ok {
		return io.EOF
	}
	instructor, ok := c.prompt("Instructor: ")
	if !ok {
		return io.EOF
	}
	hours, err := c.promptInt("Duration (hours): ")
	if err != nil {
		return err
	}
	rawCategories, ok := c.prompt("Categories (comma-separated): ")
	if !ok {
		return io.EOF
	}

	var categoryNames []string
	for _, part := range strings.Split(rawCategories, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			categoryNames = append(categoryNames, trimmed)
		}
	}

	course, err := c.courses.AddCourse(ctx, name, instructor, hours, categoryNames)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Created: course %d (%s)\n", course.ID, course.Name)
	return nil
}

func (c *Console) registerUser(ctx context.Context) error {
	name, ok := c.prompt("User name: ")
	if !ok {
		return io.EOF
	}
	email, ok := c.prompt("Email: ")
	if !ok {
		return io.EOF
	}

	user, err := c.users.RegisterUser(ctx, name, email)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Registered: user %d (%s <%s>)\n", user.ID, user.Name, user.Email)
	return nil
}

// promptUser looks up a user by email, printing "User not found." on a miss
func (c *Console) promptUser(ctx context.Context) (*models.User, error) {
	email, ok := c.prompt("User email: ")
	if !ok {
		return nil, io.EOF
	}

	user, err := c.users.FindUserByEmail(ctx, email)
	if err != nil {
		fmt.Fprintln(c.out, "User not found.")
		return nil, nil
	}
	return user, nil
}

func (c *Console) enrollUser(ctx context.Context) error {
	user, err := c.promptUser(ctx)
	if err != nil || user == nil {
		return err
	}

	courseID, err := c.promptID("Course id: ")
	if err != nil {
		return err
	}

	enrollment, err := c.enrollments.EnrollUserInCourse(ctx, user.ID, courseID)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Enrollment: %d (user %d -> course %d)\n", enrollment.ID, enrollment.UserID, enrollment.CourseID)
	return nil
}

func (c *Console) listUserCourses(ctx context.Context) error {
	user, err := c.promptUser(ctx)
	if err != nil || user == nil {
		return err
	}

	courses, err := c.enrollments.ListCoursesByUser(ctx, user.ID)
	if err != nil {
		return err
	}

	if len(courses) == 0 {
		fmt.Fprintln(c.out, "No enrollments.")
		return nil
	}

	fmt.Fprintln(c.out, "Enrolled courses:")
	for _, course := range courses {
		fmt.Fprintf(c.out, " - %d: %s (%s, %dh)\n", course.ID, course.Name, course.Instructor, course.DurationHours)
	}
	return nil
}

func (c *Console) searchCourses(ctx context.Context) error {
	keyword, ok := c.prompt("Keyword / Category: ")
	if !ok {
		return io.EOF
	}

	courses, err := c.courses.SearchCourses(ctx, keyword)
	if err != nil {
		return err
	}

	if len(courses) == 0 {
		fmt.Fprintln(c.out, "No courses found.")
		return nil
	}

	for _, course := range courses {
		avg, err := c.reviews.GetAverageRatingForCourse(ctx, course.ID)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.out, "%d | %s | %s | %dh | Avg: %s\n",
			course.ID, course.Name, course.Instructor, course.DurationHours, formatAverage(avg))
	}
	return nil
}

func (c *Console) addReview(ctx context.Context) error {
	user, err := c.promptUser(ctx)
	if err != nil || user == nil {
		return err
	}

	courseID, err := c.promptID("Course id: ")
	if err != nil {
		return err
	}
	rating, err := c.promptInt("Rating (0..10): ")
	if err != nil {
		return err
	}
	text, ok := c.prompt("Review text: ")
	if !ok {
		return io.EOF
	}

	review, err := c.reviews.AddReview(ctx, user.ID, courseID, rating, text)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Saved: review %d (rating %d)\n", review.ID, review.Rating)
	return nil
}

func (c *Console) avgRating(ctx context.Context) error {
	courseID, err := c.promptID("Course id: ")
	if err != nil {
		return err
	}

	avg, err := c.reviews.GetAverageRatingForCourse(ctx, courseID)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "Average rating: %s\n", formatAverage(avg))
	return nil
}

func (c *Console) adminList(ctx context.Context) error {
	roster, err := c.enrollments.AdminUsersWithEnrollments(ctx)
	if err != nil {
		return err
	}

	if len(roster) == 0 {
		fmt.Fprintln(c.out, "No users.")
		return nil
	}

	for _, entry := range roster {
		fmt.Fprintf(c.out, "%s <%s>\n", entry.User.Name, entry.User.Email)
		if len(entry.Courses) == 0 {
			fmt.Fprintln(c.out, "  (no enrollments)")
			continue
		}
		for _, course := range entry.Courses {
			fmt.Fprintf(c.out, "  - %d: %s\n", course.ID, course.Name)
		}
	}
	return nil
}

// formatAverage renders an average rating, distinguishing "no reviews" from a
// genuine zero mean
func formatAverage(avg *float64) string {
	if avg == nil {
		return "No ratings yet"
	}
	return fmt.Sprintf("%.2f / 10", *avg)
}
